package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	appLog "nhlparis/internal/log"
	"nhlparis/internal/model"
)

// Required header columns, matched case-insensitively after trimming.
// The provider publishes "Time (ET)" on exports but plain "Time" also
// appears; both are accepted, as is "Away" for "Visitor".
var columnAliases = map[string]string{
	"date":      "date",
	"time":      "time",
	"time (et)": "time",
	"visitor":   "away",
	"away":      "away",
	"home":      "home",
	"timezone":  "tz",
	"tz":        "tz",
	"venue":     "venue",
	"arena":     "venue",
}

var requiredColumns = []string{"date", "time", "away", "home"}

// Accepted layouts for the date and time cells. The provider exports
// US-style dates; ISO dates appear in hand-edited files.
var (
	dateLayouts = []string{"1/2/2006", "2006-01-02"}
	timeLayouts = []string{"3:04 PM", "15:04"}
)

// Loader reads schedule CSVs into GameRecords. Times are interpreted
// in the configured source zone unless a row carries its own Timezone
// value.
type Loader struct {
	sourceZone *time.Location
	zoneCache  map[string]*time.Location
}

func NewLoader(sourceZone string) (*Loader, error) {
	loc, err := LoadZone(sourceZone)
	if err != nil {
		return nil, err
	}
	return &Loader{
		sourceZone: loc,
		zoneCache:  map[string]*time.Location{sourceZone: loc},
	}, nil
}

// LoadFile reads the schedule at path. It returns the records in
// source row order and the number of rows skipped as malformed.
func (l *Loader) LoadFile(path string) ([]model.GameRecord, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, 0, err
	}
	defer f.Close()
	return l.Load(f)
}

// Load parses CSV schedule data from r. Individual unusable rows are
// logged and skipped; only a missing header column or a fully unusable
// file aborts the load.
func (l *Loader) Load(r io.Reader) ([]model.GameRecord, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, 0, fmt.Errorf("%w: empty file", ErrSchemaMismatch)
		}
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, 0, err
	}

	var (
		games   []model.GameRecord
		rows    int
		skipped int
	)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		rows++
		if err != nil {
			appLog.Warn("skipping unreadable row", "line", line, "reason", err)
			skipped++
			continue
		}

		rec, err := l.parseRow(row, cols)
		if err != nil {
			appLog.Warn("skipping malformed row", "line", line, "reason", err)
			skipped++
			continue
		}
		games = append(games, rec)
	}

	if rows > 0 && len(games) == 0 {
		return nil, skipped, fmt.Errorf("%w: %d rows, none usable", ErrNoGamesLoaded, rows)
	}

	appLog.Info("schedule loaded", "games", len(games), "skipped", skipped)
	return games, skipped, nil
}

// mapColumns resolves header names to field indexes and verifies the
// required set is present.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if canonical, ok := columnAliases[key]; ok {
			if _, dup := cols[canonical]; !dup {
				cols[canonical] = i
			}
		}
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, name)
		}
	}
	return cols, nil
}

func (l *Loader) parseRow(row []string, cols map[string]int) (model.GameRecord, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	away := cell("away")
	home := cell("home")
	dateStr := cell("date")
	timeStr := cell("time")
	if away == "" || home == "" || dateStr == "" || timeStr == "" {
		return model.GameRecord{}, errors.New("empty required cell")
	}

	loc := l.sourceZone
	if zone := cell("tz"); zone != "" {
		var err error
		loc, err = l.zone(zone)
		if err != nil {
			return model.GameRecord{}, err
		}
	}

	start, err := parseStart(dateStr, timeStr, loc)
	if err != nil {
		return model.GameRecord{}, err
	}

	return model.GameRecord{
		Away:  away,
		Home:  home,
		Start: start,
		Venue: cell("venue"),
	}, nil
}

func (l *Loader) zone(name string) (*time.Location, error) {
	if loc, ok := l.zoneCache[name]; ok {
		return loc, nil
	}
	loc, err := LoadZone(name)
	if err != nil {
		return nil, err
	}
	l.zoneCache[name] = loc
	return loc, nil
}

func parseStart(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	for _, dl := range dateLayouts {
		for _, tl := range timeLayouts {
			t, err := time.ParseInLocation(dl+" "+tl, dateStr+" "+timeStr, loc)
			if err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("unparsable start %q %q", dateStr, timeStr)
}
