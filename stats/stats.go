// Package stats reports breathing session statistics
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/breathe/internal/models"
	"github.com/ayoisaiah/breathe/internal/timeutil"
	"github.com/ayoisaiah/breathe/internal/ui"
	"github.com/ayoisaiah/breathe/store"
)

const (
	barChartChar  = "▇"
	noSessionsMsg = "No sessions found for the specified time range"
	hoursInADay   = 24
)

// Opts holds the reporting window and output settings.
type Opts struct {
	StartTime time.Time
	EndTime   time.Time
	Stdout    io.Writer
	Stdin     io.Reader
	JSON      bool
}

// PatternTotals summarises the sessions of one pattern.
type PatternTotals struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Sessions  int           `json:"sessions"`
	Completed int           `json:"completed"`
	Time      time.Duration `json:"time"`
}

// Summary holds the totals for a reporting window.
type Summary struct {
	StartTime time.Time                      `json:"start_time"`
	EndTime   time.Time                      `json:"end_time"`
	Weekly    map[time.Weekday]time.Duration `json:"-"`
	Hourly    map[int]time.Duration          `json:"-"`
	Patterns  []PatternTotals                `json:"patterns"`
	TotalTime time.Duration                  `json:"total_time"`
	AvgTime   time.Duration                  `json:"avg_time_per_day"`
	Sessions  int                            `json:"sessions"`
	Completed int                            `json:"completed"`
	Abandoned int                            `json:"abandoned"`
	Cycles    int                            `json:"cycles"`
}

// filterSessions ensures that sessions with an invalid end date are ignored.
func filterSessions(sessions []models.Session) []models.Session {
	filtered := sessions[:0]

	for i := range sessions {
		sess := sessions[i]

		if sess.EndTime.IsZero() || sess.EndTime.Before(sess.StartTime) {
			continue
		}

		filtered = append(filtered, sess)
	}

	return filtered
}

// days is the number of calendar days the window touches.
func days(start, end time.Time) int {
	hours := timeutil.Round(
		timeutil.RoundToEnd(end).Sub(timeutil.RoundToStart(start)).Hours(),
	)

	return max(hours/hoursInADay, 1)
}

// Compute aggregates sessions over the window [start, end]. A zero start
// means the window begins on the day of the first session.
func Compute(sessions []models.Session, start, end time.Time) Summary {
	sessions = filterSessions(sessions)

	if start.IsZero() && len(sessions) > 0 {
		start = timeutil.RoundToStart(sessions[0].StartTime)
	}

	s := Summary{
		StartTime: start,
		EndTime:   end,
		Weekly:    make(map[time.Weekday]time.Duration),
		Hourly:    make(map[int]time.Duration),
	}

	byPattern := make(map[string]*PatternTotals)

	for i := range sessions {
		sess := sessions[i]

		s.Sessions++
		s.TotalTime += sess.Elapsed
		s.Cycles += sess.CyclesCompleted

		if sess.Completed {
			s.Completed++
		} else {
			s.Abandoned++
		}

		s.Weekly[sess.StartTime.Weekday()] += sess.Elapsed
		s.Hourly[sess.StartTime.Hour()] += sess.Elapsed

		p, ok := byPattern[sess.PatternID]
		if !ok {
			p = &PatternTotals{ID: sess.PatternID, Name: sess.PatternName}
			byPattern[sess.PatternID] = p
		}

		p.Sessions++
		p.Time += sess.Elapsed

		if sess.Completed {
			p.Completed++
		}
	}

	for _, p := range byPattern {
		s.Patterns = append(s.Patterns, *p)
	}

	slices.SortFunc(s.Patterns, func(a, b PatternTotals) int {
		if a.Sessions != b.Sessions {
			return b.Sessions - a.Sessions
		}

		if natural.Less(a.Name, b.Name) {
			return -1
		}

		if natural.Less(b.Name, a.Name) {
			return 1
		}

		return 0
	})

	if !start.IsZero() {
		s.AvgTime = s.TotalTime / time.Duration(days(start, end))
	}

	return s
}

func getSummary(s Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	lines := []string{
		fmt.Sprintln("Time breathing:", ui.Green(timeutil.Human(s.TotalTime))),
		fmt.Sprintln("Average per day:", ui.Green(timeutil.Human(s.AvgTime))),
		fmt.Sprintln("Sessions completed:", ui.Green(s.Completed)),
		fmt.Sprintln("Sessions abandoned:", ui.Green(s.Abandoned)),
		fmt.Sprintln("Cycles breathed:", ui.Green(s.Cycles)),
	}

	return header + strings.Join(lines, "")
}

func getPatterns(w io.Writer, s Summary) error {
	if len(s.Patterns) == 0 {
		return nil
	}

	fmt.Fprintf(w, "\n%s\n", ui.Blue("Patterns"))

	rows := make([][]string, 0, len(s.Patterns))

	for _, p := range s.Patterns {
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%d", p.Sessions),
			fmt.Sprintf("%d", p.Completed),
			timeutil.Human(p.Time),
		})
	}

	return ui.PrintTable(
		[]string{"PATTERN", "SESSIONS", "COMPLETED", "TIME"},
		rows,
		w,
	)
}

func getBarChart(title string, bars pterm.Bars) string {
	if len(bars) == 0 {
		return ""
	}

	header := ui.Blue(fmt.Sprintf("\n%s breakdown (seconds)", title))

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func weeklyBars(s Summary) pterm.Bars {
	bars := make(pterm.Bars, 0, len(s.Weekly))

	for d := time.Sunday; d <= time.Saturday; d++ {
		bars = append(bars, pterm.Bar{
			Label: d.String(),
			Value: timeutil.Round(s.Weekly[d].Seconds()),
		})
	}

	return bars
}

func hourlyBars(s Summary) pterm.Bars {
	var bars pterm.Bars

	for h := range hoursInADay {
		v, ok := s.Hourly[h]
		if !ok {
			continue
		}

		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("%02d:00", h),
			Value: timeutil.Round(v.Seconds()),
		})
	}

	return bars
}

// Show displays the statistics for the reporting window.
func Show(db store.DB, opts *Opts) error {
	sessions, err := db.GetSessions(opts.StartTime, opts.EndTime)
	if err != nil {
		return err
	}

	s := Compute(sessions, opts.StartTime, opts.EndTime)

	if opts.JSON {
		enc := json.NewEncoder(opts.Stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(s)
	}

	if s.Sessions == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	reportingStart := s.StartTime.Format("January 02, 2006")
	reportingEnd := s.EndTime.Format("January 02, 2006")
	timePeriod := "Reporting period: " + reportingStart + " - " + reportingEnd

	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgLightBlue)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintln(timePeriod)

	fmt.Fprint(opts.Stdout, header, getSummary(s))

	if err := getPatterns(opts.Stdout, s); err != nil {
		return err
	}

	output := fmt.Sprint(
		getBarChart("Weekly", weeklyBars(s)),
		getBarChart("Hourly", hourlyBars(s)),
	)

	fmt.Fprintln(opts.Stdout, strings.TrimSpace(output))

	return nil
}
