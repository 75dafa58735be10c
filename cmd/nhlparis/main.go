package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nhlparis/internal/config"
	appLog "nhlparis/internal/log"
	"nhlparis/internal/report"
	"nhlparis/internal/schedule"
)

type options struct {
	configPath string
	input      string
	highlight  string
	star       string
	weekend    bool
	canada     bool
	calendar   bool
	ics        bool
	verbose    bool
}

func main() {
	var opts options

	root := &cobra.Command{
		Use:   "nhlparis",
		Short: "Report Europe-friendly NHL game times",
		Long: "nhlparis reads an NHL schedule CSV, converts each start time to\n" +
			"Paris time and reports the games that start inside the configured\n" +
			"viewing window, as a flat list or a monthly calendar grid.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &opts)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (optional)")
	f.StringVar(&opts.input, "input", "nhl-schedule.csv", "schedule CSV to read")
	f.StringVar(&opts.highlight, "highlight", "", "comma-separated team names to bold")
	f.StringVar(&opts.star, "star", "", "comma-separated team names to bold and star")
	f.BoolVar(&opts.weekend, "weekend", false, "italicize Friday/Saturday (Paris time) games")
	f.BoolVar(&opts.canada, "canada", false, "mark games involving a Canadian franchise")
	f.BoolVar(&opts.calendar, "calendar", false, "render a monthly calendar grid instead of a list")
	f.BoolVar(&opts.ics, "ics", false, "also write an iCalendar export")
	f.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "nhlparis:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	if opts.verbose {
		appLog.SetLevel(appLog.LevelDebug)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override file values only when given explicitly, so a
	// config file can carry standing team lists.
	if cmd.Flags().Changed("input") {
		cfg.Input = opts.input
	}
	if cmd.Flags().Changed("highlight") {
		cfg.Highlight = config.SplitList(opts.highlight)
	}
	if cmd.Flags().Changed("star") {
		cfg.Star = config.SplitList(opts.star)
	}

	win, err := report.NewWindow(cfg.WindowStart, cfg.WindowEnd)
	if err != nil {
		return fmt.Errorf("viewing window: %w", err)
	}
	loader, err := schedule.NewLoader(cfg.SourceTimezone)
	if err != nil {
		return fmt.Errorf("source timezone: %w", err)
	}
	conv, err := schedule.NewConverter(cfg.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("display timezone: %w", err)
	}

	appLog.Debug("effective config",
		"input", cfg.Input,
		"output", cfg.Output,
		"window", win.String(),
		"source_tz", cfg.SourceTimezone,
		"display_tz", cfg.DisplayTimezone,
		"week_start", cfg.WeekStart,
		"highlight", strings.Join(cfg.Highlight, ","),
		"star", strings.Join(cfg.Star, ","),
	)

	records, skipped, err := loader.LoadFile(cfg.Input)
	if err != nil {
		return err
	}

	ann := report.Annotator{
		Highlight: cfg.Highlight,
		Star:      cfg.Star,
		Weekend:   opts.weekend,
		Canada:    opts.canada,
	}
	games := report.Select(records, conv, win, ann)
	appLog.Info("window applied", "loaded", len(records), "kept", len(games))

	meta := report.Meta{
		Window:    win,
		Timezone:  cfg.DisplayTimezone,
		Highlight: cfg.Highlight,
		Star:      cfg.Star,
		Skipped:   skipped,
	}

	var content string
	if opts.calendar {
		content = report.RenderCalendar(games, meta, cfg.WeekStart)
	} else {
		content = report.RenderList(games, meta)
	}

	if err := report.Write(cfg.Output, content, os.Stdout); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	appLog.Info("report written", "path", cfg.Output, "games", len(games))

	if opts.ics {
		icsPath := icsPathFor(cfg.Output)
		if err := os.WriteFile(icsPath, []byte(report.RenderICS(games)), 0o644); err != nil {
			return fmt.Errorf("writing calendar export: %w", err)
		}
		appLog.Info("calendar export written", "path", icsPath, "events", len(games))
	}

	return nil
}

// icsPathFor swaps the report extension for .ics, keeping the fixed
// base name next to the markdown report.
func icsPathFor(output string) string {
	if i := strings.LastIndex(output, "."); i > 0 {
		return output[:i] + ".ics"
	}
	return output + ".ics"
}
