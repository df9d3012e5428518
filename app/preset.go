package app

import (
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/pattern"
	"github.com/ayoisaiah/breathe/report"
	"github.com/ayoisaiah/breathe/store"
)

// presetFile is the layout of an exported presets file. Durations are
// written as strings such as "4s" or "5.5s".
type presetFile struct {
	Presets []pattern.Pattern `yaml:"presets"`
}

func isBuiltin(id string) bool {
	_, ok := pattern.Find(pattern.Builtin(), id)
	return ok
}

func presetDuration(name, value string) (time.Duration, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}

	d, err := config.ParseDuration(value)
	if err != nil {
		return 0, errPresetDuration.Fmt(name).Wrap(err)
	}

	return d, nil
}

// presetFromFlags builds a preset out of the flags of the save command.
func presetFromFlags(ctx *cli.Context) (*pattern.Pattern, error) {
	p := &pattern.Pattern{
		ID:          pattern.Slug(ctx.String("name")),
		Name:        strings.TrimSpace(ctx.String("name")),
		Description: ctx.String("description"),
		Category:    ctx.String("category"),
		Difficulty:  pattern.Any,
	}

	durations := []struct {
		dst  *time.Duration
		name string
	}{
		{&p.Inhale, "inhale"},
		{&p.Hold1, "hold1"},
		{&p.Exhale, "exhale"},
		{&p.Hold2, "hold2"},
	}

	for _, d := range durations {
		v, err := presetDuration(d.name, ctx.String(d.name))
		if err != nil {
			return nil, err
		}

		*d.dst = v
	}

	return p, nil
}

func savePreset(db store.DB, p *pattern.Pattern) error {
	if p.ID == "" {
		p.ID = pattern.Slug(p.Name)
	}

	if isBuiltin(p.ID) {
		return errBuiltinPreset.Fmt(p.ID)
	}

	if p.Difficulty == "" {
		p.Difficulty = pattern.Any
	}

	return db.SavePreset(p)
}

// exportPresets writes every preset to path and reports how many were
// written.
func exportPresets(db store.DB, path string) (int, error) {
	if path == "" {
		return 0, errMissingFile
	}

	presets, err := db.GetPresets()
	if err != nil {
		return 0, err
	}

	pattern.SortByName(presets)

	b, err := yaml.Marshal(presetFile{Presets: presets})
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(path, b, 0o600); err != nil {
		return 0, errWritePresets.Fmt(path).Wrap(err)
	}

	return len(presets), nil
}

// importPresets saves each preset in the file at path, overwriting presets
// with the same ID. Nothing is saved if any preset is invalid.
func importPresets(db store.DB, path string) (int, error) {
	if path == "" {
		return 0, errMissingFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return 0, errReadPresets.Fmt(path).Wrap(err)
	}

	var f presetFile

	if err := yaml.Unmarshal(b, &f); err != nil {
		return 0, errReadPresets.Fmt(path).Wrap(err)
	}

	for i := range f.Presets {
		p := &f.Presets[i]

		if p.ID == "" {
			p.ID = pattern.Slug(p.Name)
		}

		if isBuiltin(p.ID) {
			return 0, errBuiltinPreset.Fmt(p.ID)
		}

		if err := p.Validate(); err != nil {
			return 0, errReadPresets.Fmt(path).Wrap(err)
		}
	}

	for i := range f.Presets {
		if err := savePreset(db, &f.Presets[i]); err != nil {
			return i, err
		}
	}

	return len(f.Presets), nil
}

func presetSaveAction(ctx *cli.Context) error {
	p, err := presetFromFlags(ctx)
	if err != nil {
		return err
	}

	return withStore(func(db store.DB) error {
		if err := savePreset(db, p); err != nil {
			return err
		}

		report.Success("saved %s (%s) as %s", p.Name, p.Ratio(), p.ID)

		return nil
	})
}

func presetDeleteAction(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "" {
		return errMissingPatternID
	}

	if isBuiltin(id) {
		return errBuiltinPreset.Fmt(id)
	}

	return withStore(func(db store.DB) error {
		if err := db.DeletePreset(id); err != nil {
			return err
		}

		report.Success("deleted %s", id)

		return nil
	})
}

func presetExportAction(ctx *cli.Context) error {
	return withStore(func(db store.DB) error {
		n, err := exportPresets(db, ctx.Args().First())
		if err != nil {
			return err
		}

		report.Success("exported %d presets", n)

		return nil
	})
}

func presetImportAction(ctx *cli.Context) error {
	return withStore(func(db store.DB) error {
		n, err := importPresets(db, ctx.Args().First())
		if err != nil {
			return err
		}

		report.Success("imported %d presets", n)

		return nil
	})
}
