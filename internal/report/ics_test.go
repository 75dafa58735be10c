package report_test

import (
	"strings"
	"testing"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/require"

	"nhlparis/internal/model"
	"nhlparis/internal/report"
)

func TestRenderICS_oneEventPerGame(t *testing.T) {
	g1 := displayGame(t, "Winnipeg Jets", "Toronto Maple Leafs", "2025-10-10 19:00")
	g2 := displayGame(t, "Montreal Canadiens", "Boston Bruins", "2025-10-11 21:00")
	g2.Starred = true
	g2.Venue = "TD Garden"

	out := report.RenderICS([]model.DisplayGame{g2, g1})

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 2)

	require.Contains(t, out, "UID:20251010T1900-wpg-tor@nhlparis")
	require.Contains(t, out, "SUMMARY:Winnipeg Jets @ Toronto Maple Leafs")
	require.Contains(t, out, "SUMMARY:⭐ Montreal Canadiens @ Boston Bruins")
	require.Contains(t, out, "LOCATION:TD Garden")
	require.Contains(t, out, "METHOD:PUBLISH")
}

func TestRenderICS_emptyStillValid(t *testing.T) {
	out := report.RenderICS(nil)

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Empty(t, cal.Events())
}
