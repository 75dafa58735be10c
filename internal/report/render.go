package report

import (
	"fmt"
	"sort"
	"strings"

	"nhlparis/internal/model"
)

// Meta carries the run facts the report preamble mentions.
type Meta struct {
	Window    Window
	Timezone  string
	Highlight []string
	Star      []string
	Skipped   int
}

// preamble is shared by both render modes: title, window summary,
// counts, and a note about skipped source rows when there were any.
func preamble(games []model.DisplayGame, meta Meta) string {
	var b strings.Builder
	b.WriteString("# Europe-Friendly NHL Games\n\n")
	fmt.Fprintf(&b, "*Games starting between %s %s time (all times 24-hour)*\n\n",
		meta.Window, meta.Timezone)
	fmt.Fprintf(&b, "**Total games found: %d**\n\n", len(games))

	if n := countFlag(games, func(g model.DisplayGame) bool { return g.Highlighted }); n > 0 && len(meta.Highlight) > 0 {
		fmt.Fprintf(&b, "**%s games (highlighted): %d**\n\n", strings.Join(meta.Highlight, ", "), n)
	}
	if n := countFlag(games, func(g model.DisplayGame) bool { return g.Starred }); n > 0 && len(meta.Star) > 0 {
		fmt.Fprintf(&b, "**%s games (starred): %d**\n\n", strings.Join(meta.Star, ", "), n)
	}
	if meta.Skipped > 0 {
		fmt.Fprintf(&b, "*Skipped %d unparsable schedule rows*\n\n", meta.Skipped)
	}

	b.WriteString("---\n\n")
	return b.String()
}

func countFlag(games []model.DisplayGame, f func(model.DisplayGame) bool) int {
	n := 0
	for _, g := range games {
		if f(g) {
			n++
		}
	}
	return n
}

// decorate applies the display flags to a rendered label: italics
// innermost, bold outside, then the star and flag glyphs appended.
func decorate(label string, g model.DisplayGame) string {
	if g.Weekend {
		label = "*" + label + "*"
	}
	if g.Starred || g.Highlighted {
		label = "**" + label + "**"
	}
	if g.Starred {
		label += " ⭐"
	}
	if g.Canadian {
		label += " \U0001f1e8\U0001f1e6"
	}
	return label
}

// sortedByParis returns a copy ordered chronologically by Paris start
// time; the stable sort keeps source order for simultaneous games.
func sortedByParis(games []model.DisplayGame) []model.DisplayGame {
	out := make([]model.DisplayGame, len(games))
	copy(out, games)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Paris.Before(out[j].Paris)
	})
	return out
}
