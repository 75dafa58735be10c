package report

import (
	"strings"
	"time"

	"nhlparis/internal/model"
	"nhlparis/internal/schedule"
)

// Annotator derives per-game display flags from the run configuration.
// The flags are independent and combine additively at render time.
type Annotator struct {
	// Highlight and Star are matched case-insensitively as substrings
	// of either team name, so "Rangers" matches "New York Rangers".
	Highlight []string
	Star      []string

	Weekend bool
	Canada  bool
}

// Annotate builds the DisplayGame for rec with its converted time.
// Starred games render bold as well, so a team in both lists is simply
// starred.
func (a Annotator) Annotate(rec model.GameRecord, paris time.Time) model.DisplayGame {
	return model.DisplayGame{
		GameRecord:  rec,
		Paris:       paris,
		Highlighted: matchesAny(rec, a.Highlight),
		Starred:     matchesAny(rec, a.Star),
		Weekend:     a.Weekend && isWeekendDay(paris.Weekday()),
		Canadian:    a.Canada && (isCanadian(rec.Home) || isCanadian(rec.Away)),
	}
}

// Select runs records through the convert/filter/annotate stages in
// source order.
func Select(records []model.GameRecord, conv *schedule.Converter, win Window, ann Annotator) []model.DisplayGame {
	var games []model.DisplayGame
	for _, rec := range records {
		paris := conv.Civil(rec.Start)
		if !win.Include(paris) {
			continue
		}
		games = append(games, ann.Annotate(rec, paris))
	}
	return games
}

func matchesAny(rec model.GameRecord, names []string) bool {
	home := strings.ToLower(rec.Home)
	away := strings.ToLower(rec.Away)
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" {
			continue
		}
		if strings.Contains(home, n) || strings.Contains(away, n) {
			return true
		}
	}
	return false
}

func isWeekendDay(d time.Weekday) bool {
	return d == time.Friday || d == time.Saturday
}
