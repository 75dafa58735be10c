package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nhlparis/internal/config"
)

func TestLoad_emptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")

	require.NoError(t, err)
	require.Equal(t, "nhl-schedule.csv", cfg.Input)
	require.Equal(t, "europe-friendly-games.md", cfg.Output)
	require.Equal(t, "America/New_York", cfg.SourceTimezone)
	require.Equal(t, "Europe/Paris", cfg.DisplayTimezone)
	require.Equal(t, "13:00", cfg.WindowStart)
	require.Equal(t, "22:00", cfg.WindowEnd)
	require.Equal(t, "monday", cfg.WeekStart)
}

func TestLoad_partialFileIsNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "window_start: \"14:00\"\nweek_start: sunday\nstar:\n  - Montreal Canadiens\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := config.Load(path)

	require.NoError(t, err)
	require.Equal(t, "14:00", cfg.WindowStart)
	require.Equal(t, "22:00", cfg.WindowEnd) // filled from defaults
	require.Equal(t, "sunday", cfg.WeekStart)
	require.Equal(t, []string{"Montreal Canadiens"}, cfg.Star)
	require.Equal(t, "nhl-schedule.csv", cfg.Input)
}

func TestLoad_missingFileIsCreatedWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	require.Equal(t, "Europe/Paris", cfg.DisplayTimezone)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second load reads the file it just wrote.
	again, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestNormalize_unknownWeekStartFallsBack(t *testing.T) {
	cfg := &config.Config{WeekStart: "wednesday"}
	cfg.Normalize()
	require.Equal(t, "monday", cfg.WeekStart)
}

func TestLoad_badYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("highlight: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"Winnipeg Jets", "Toronto Maple Leafs"},
		config.SplitList(" Winnipeg Jets , Toronto Maple Leafs ,"))
	require.Nil(t, config.SplitList(""))
	require.Nil(t, config.SplitList(" , ,"))
}
