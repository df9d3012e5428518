package app

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/breathe/internal/config"
	"github.com/ayoisaiah/breathe/internal/pattern"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/report"
	"github.com/ayoisaiah/breathe/store"
)

// lastPattern selects whichever pattern was used most recently.
const lastPattern = "last"

type listedPattern struct {
	pattern.Pattern
	Ratio    string `json:"ratio"`
	Favorite bool   `json:"favorite"`
}

// catalog returns the built-in patterns followed by the user's presets.
func catalog(db store.DB) ([]pattern.Pattern, error) {
	presets, err := db.GetPresets()
	if err != nil {
		return nil, err
	}

	pattern.SortByName(presets)

	return append(pattern.Builtin(), presets...), nil
}

func resolveLastPattern(
	db store.DB,
	cfg *config.Config,
	patterns []pattern.Pattern,
) {
	if cfg.Session.Pattern != lastPattern {
		return
	}

	cfg.Session.Pattern = pattern.DefaultID

	id, err := db.LastPattern()
	if err != nil {
		slog.Error("reading last pattern failed", slog.Any("error", err))
		return
	}

	if _, ok := pattern.Find(patterns, id); ok {
		cfg.Session.Pattern = id
	}
}

func filterPatterns(
	patterns []pattern.Pattern,
	favs []string,
	q pattern.Query,
	favoritesOnly bool,
) []pattern.Pattern {
	if favoritesOnly {
		if len(favs) == 0 {
			return nil
		}

		q.IDs = favs
	}

	return pattern.Filter(patterns, q)
}

func writePatterns(
	w io.Writer,
	patterns []pattern.Pattern,
	favs []string,
	asJSON bool,
) error {
	listed := make([]listedPattern, 0, len(patterns))

	for i := range patterns {
		p := patterns[i]

		listed = append(listed, listedPattern{
			Pattern:  p,
			Ratio:    p.Ratio(),
			Favorite: store.IsFavorite(favs, p.ID),
		})
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(listed)
	}

	rows := make([][]string, 0, len(listed))

	for _, p := range listed {
		rows = append(rows, []string{
			ui.Favorite(p.Favorite),
			p.ID,
			p.Name,
			p.Ratio,
			p.Category,
			string(p.Difficulty),
		})
	}

	return ui.PrintTable(
		[]string{"", "ID", "NAME", "RATIO (S)", "CATEGORY", "DIFFICULTY"},
		rows,
		w,
	)
}

// patternsAction lists the patterns that match the search flags.
func patternsAction(ctx *cli.Context) error {
	return withStore(func(db store.DB) error {
		patterns, err := catalog(db)
		if err != nil {
			return err
		}

		favs, err := db.GetFavorites()
		if err != nil {
			return err
		}

		patterns = filterPatterns(patterns, favs, pattern.Query{
			Search:   ctx.String("search"),
			Category: ctx.String("category"),
		}, ctx.Bool("favorites"))

		return writePatterns(config.Stdout, patterns, favs, ctx.Bool("json"))
	})
}

func toggleFavorite(db store.DB, id string) (bool, error) {
	if id == "" {
		return false, errMissingPatternID
	}

	patterns, err := catalog(db)
	if err != nil {
		return false, err
	}

	if _, ok := pattern.Find(patterns, id); !ok {
		return false, errUnknownPattern.Fmt(id)
	}

	return db.ToggleFavorite(id)
}

// favoriteAction marks or unmarks a pattern as a favourite.
func favoriteAction(ctx *cli.Context) error {
	return withStore(func(db store.DB) error {
		id := ctx.Args().First()

		fav, err := toggleFavorite(db, id)
		if err != nil {
			return err
		}

		if fav {
			report.Success("%s added to favourites", id)
		} else {
			report.Success("%s removed from favourites", id)
		}

		return nil
	})
}
