package report

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"nhlparis/internal/model"
)

// Games have no published end time; block out a regulation game plus
// intermissions and a margin.
const gameDuration = 3 * time.Hour

// RenderICS builds an iCalendar export of the filtered games so they
// can be subscribed to directly. One VEVENT per game, start at the
// converted time; UIDs are derived from the matchup and start so
// re-runs update rather than duplicate.
func RenderICS(games []model.DisplayGame) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//nhlparis//schedule export//EN")

	for _, g := range sortedByParis(games) {
		ev := cal.AddEvent(eventUID(g))
		ev.SetDtStampTime(time.Now().UTC())
		ev.SetStartAt(g.Paris)
		ev.SetEndAt(g.Paris.Add(gameDuration))
		ev.SetSummary(eventSummary(g))
		if g.Venue != "" {
			ev.SetLocation(g.Venue)
		}
	}
	return cal.Serialize()
}

func eventUID(g model.DisplayGame) string {
	return fmt.Sprintf("%s-%s-%s@nhlparis",
		g.Paris.Format("20060102T1504"),
		strings.ToLower(TriCode(g.Away)),
		strings.ToLower(TriCode(g.Home)))
}

func eventSummary(g model.DisplayGame) string {
	s := fmt.Sprintf("%s @ %s", g.Away, g.Home)
	if g.Starred {
		s = "⭐ " + s
	}
	return s
}
