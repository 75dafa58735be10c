package report

import (
	"fmt"
	"strings"

	"nhlparis/internal/model"
)

// RenderList produces the flat chronological report: one bullet per
// game, decorated per its flags.
func RenderList(games []model.DisplayGame, meta Meta) string {
	var b strings.Builder
	b.WriteString(preamble(games, meta))

	if len(games) == 0 {
		b.WriteString("No games found in the viewing window.\n")
		return b.String()
	}

	for _, g := range sortedByParis(games) {
		label := fmt.Sprintf("%s at %s - %s @ %s",
			g.Paris.Format("2006-01-02"), g.Paris.Format("15:04"), g.Away, g.Home)
		b.WriteString("- " + decorate(label, g) + "\n")
	}
	return b.String()
}
