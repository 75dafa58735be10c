package report_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nhlparis/internal/model"
	"nhlparis/internal/report"
)

func displayGame(t *testing.T, away, home, paris string) model.DisplayGame {
	t.Helper()
	return model.DisplayGame{
		GameRecord: model.GameRecord{Away: away, Home: home},
		Paris:      parisTime(t, paris),
	}
}

func defaultMeta(t *testing.T) report.Meta {
	t.Helper()
	win, err := report.NewWindow("13:00", "22:00")
	require.NoError(t, err)
	return report.Meta{Window: win, Timezone: "Europe/Paris"}
}

func TestRenderList_chronologicalOrder(t *testing.T) {
	games := []model.DisplayGame{
		displayGame(t, "Calgary Flames", "Vancouver Canucks", "2025-11-02 20:00"),
		displayGame(t, "Winnipeg Jets", "Toronto Maple Leafs", "2025-10-10 19:00"),
		displayGame(t, "Boston Bruins", "Montreal Canadiens", "2025-10-11 19:00"),
	}

	out := report.RenderList(games, defaultMeta(t))

	first := strings.Index(out, "2025-10-10")
	second := strings.Index(out, "2025-10-11")
	third := strings.Index(out, "2025-11-02")
	require.Positive(t, first)
	require.Greater(t, second, first)
	require.Greater(t, third, second)
}

func TestRenderList_highlightedGameIsBold(t *testing.T) {
	g := displayGame(t, "Winnipeg Jets", "Toronto Maple Leafs", "2025-10-10 19:00")
	g.Highlighted = true

	meta := defaultMeta(t)
	meta.Highlight = []string{"Winnipeg Jets"}
	out := report.RenderList([]model.DisplayGame{g}, meta)

	require.Contains(t, out, "- **2025-10-10 at 19:00 - Winnipeg Jets @ Toronto Maple Leafs**\n")
	require.Contains(t, out, "**Winnipeg Jets games (highlighted): 1**")
}

func TestRenderList_starredGameIsBoldAndStarred(t *testing.T) {
	g := displayGame(t, "Montreal Canadiens", "Boston Bruins", "2025-10-14 19:00")
	g.Starred = true // not highlighted

	out := report.RenderList([]model.DisplayGame{g}, defaultMeta(t))

	require.Contains(t, out, "- **2025-10-14 at 19:00 - Montreal Canadiens @ Boston Bruins** ⭐\n")
}

func TestRenderList_decorationsCombine(t *testing.T) {
	g := displayGame(t, "Winnipeg Jets", "Toronto Maple Leafs", "2025-10-10 19:00")
	g.Starred = true
	g.Weekend = true
	g.Canadian = true

	out := report.RenderList([]model.DisplayGame{g}, defaultMeta(t))

	require.Contains(t, out, "- ***2025-10-10 at 19:00 - Winnipeg Jets @ Toronto Maple Leafs*** ⭐ \U0001f1e8\U0001f1e6\n")
}

func TestRenderList_weekendItalics(t *testing.T) {
	fri := displayGame(t, "A", "B", "2025-10-10 19:00")
	fri.Weekend = true
	tue := displayGame(t, "C", "D", "2025-10-14 19:00")

	out := report.RenderList([]model.DisplayGame{fri, tue}, defaultMeta(t))

	require.Contains(t, out, "- *2025-10-10 at 19:00 - A @ B*\n")
	require.Contains(t, out, "- 2025-10-14 at 19:00 - C @ D\n")
}

func TestRenderList_empty(t *testing.T) {
	out := report.RenderList(nil, defaultMeta(t))

	require.Contains(t, out, "**Total games found: 0**")
	require.Contains(t, out, "No games found in the viewing window.")
}

func TestRenderList_skippedRowsNoted(t *testing.T) {
	meta := defaultMeta(t)
	meta.Skipped = 3

	out := report.RenderList(nil, meta)

	require.Contains(t, out, "*Skipped 3 unparsable schedule rows*")

	meta.Skipped = 0
	require.NotContains(t, report.RenderList(nil, meta), "Skipped")
}

func TestWrite_fileAndConsoleAreIdentical(t *testing.T) {
	path := t.TempDir() + "/report.md"
	var console strings.Builder
	content := report.RenderList(nil, defaultMeta(t))

	require.NoError(t, report.Write(path, content, &console))

	fileData, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, console.String())
	require.Equal(t, console.String(), string(fileData))
}
