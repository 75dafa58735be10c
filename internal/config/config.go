package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the file-backed configuration. Every field has a working
// default so the tool runs with no config file at all; CLI flags
// override whatever the file provides.
type Config struct {
	// Input is the schedule CSV path.
	Input string `yaml:"input"`

	// Output is the markdown report path. The same content is echoed
	// to stdout.
	Output string `yaml:"output"`

	// SourceTimezone is the IANA zone the schedule's times are
	// published in (the provider publishes Eastern times). A per-row
	// Timezone column overrides it.
	SourceTimezone string `yaml:"source_timezone"`

	// DisplayTimezone is the IANA zone games are converted to and
	// filtered in.
	DisplayTimezone string `yaml:"display_timezone"`

	// WindowStart / WindowEnd bound the viewing window as "HH:MM" or
	// "HH:MM:SS" clock strings, both inclusive.
	WindowStart string `yaml:"window_start"`
	WindowEnd   string `yaml:"window_end"`

	// WeekStart controls the first column of calendar-mode grids.
	// Supported values: "monday" (default) and "sunday".
	WeekStart string `yaml:"week_start"`

	// Highlight and Star are default team lists; the corresponding
	// flags replace them when given.
	Highlight []string `yaml:"highlight"`
	Star      []string `yaml:"star"`
}

func DefaultConfig() *Config {
	return &Config{
		Input:           "nhl-schedule.csv",
		Output:          "europe-friendly-games.md",
		SourceTimezone:  "America/New_York",
		DisplayTimezone: "Europe/Paris",
		WindowStart:     "13:00",
		WindowEnd:       "22:00",
		WeekStart:       "monday",
		Highlight:       []string{},
		Star:            []string{},
	}
}

// Normalize fills zero values with defaults so a partially-filled file
// still behaves correctly.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Input == "" {
		c.Input = def.Input
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.SourceTimezone == "" {
		c.SourceTimezone = def.SourceTimezone
	}
	if c.DisplayTimezone == "" {
		c.DisplayTimezone = def.DisplayTimezone
	}
	if c.WindowStart == "" {
		c.WindowStart = def.WindowStart
	}
	if c.WindowEnd == "" {
		c.WindowEnd = def.WindowEnd
	}
	switch c.WeekStart {
	case "monday", "sunday":
	default:
		// Unknown value; fall back rather than surprise the layout.
		c.WeekStart = "monday"
	}
	if c.Highlight == nil {
		c.Highlight = []string{}
	}
	if c.Star == nil {
		c.Star = []string{}
	}
}

// Load reads the YAML config at path. An empty path returns the
// defaults without touching disk. A missing file at an explicit path is
// created with defaults (first run) and the defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600
// permissions, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".nhlparis-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// SplitList splits a comma-separated flag value into a trimmed slice,
// ignoring empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
