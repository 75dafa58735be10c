package report

import (
	"fmt"
	"strings"
	"time"

	"nhlparis/internal/model"
)

// RenderCalendar produces the month-grid report: one markdown table
// per Paris calendar month that has at least one qualifying game.
// weekStart is "monday" (default) or "sunday".
func RenderCalendar(games []model.DisplayGame, meta Meta, weekStart string) string {
	var b strings.Builder
	b.WriteString(preamble(games, meta))

	if len(games) == 0 {
		b.WriteString("No games found in the viewing window.\n")
		return b.String()
	}

	sorted := sortedByParis(games)

	// Bucket games by first-of-month; the sort above keeps both the
	// month keys and each day's entries chronological.
	var months []time.Time
	byMonth := map[time.Time][]model.DisplayGame{}
	for _, g := range sorted {
		key := time.Date(g.Paris.Year(), g.Paris.Month(), 1, 0, 0, 0, 0, g.Paris.Location())
		if _, ok := byMonth[key]; !ok {
			months = append(months, key)
		}
		byMonth[key] = append(byMonth[key], g)
	}

	for i, m := range months {
		if i > 0 {
			b.WriteString("\n")
		}
		renderMonth(&b, m, byMonth[m], weekStart)
	}
	return b.String()
}

func renderMonth(b *strings.Builder, month time.Time, games []model.DisplayGame, weekStart string) {
	fmt.Fprintf(b, "## %s %d\n\n", month.Month(), month.Year())

	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekStart == "sunday" {
		names = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	}
	b.WriteString("| " + strings.Join(names, " | ") + " |\n")
	b.WriteString(strings.Repeat("| --- ", 7) + "|\n")

	byDay := map[int][]model.DisplayGame{}
	for _, g := range games {
		byDay[g.Paris.Day()] = append(byDay[g.Paris.Day()], g)
	}

	// Day of the last-of-month trick: day 0 of the next month.
	daysInMonth := time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, month.Location()).Day()
	offset := weekdayColumn(month.Weekday(), weekStart)

	cells := make([]string, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		cells = append(cells, "")
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, dayCell(day, byDay[day]))
	}
	for len(cells)%7 != 0 {
		cells = append(cells, "")
	}

	for i := 0; i < len(cells); i += 7 {
		b.WriteString("| " + strings.Join(cells[i:i+7], " | ") + " |\n")
	}
}

// weekdayColumn maps a weekday to its grid column under the configured
// week start.
func weekdayColumn(d time.Weekday, weekStart string) int {
	if weekStart == "sunday" {
		return int(d)
	}
	return (int(d) + 6) % 7
}

// dayCell renders the day number plus any games, short form:
// "4<br>**WPG@TOR 19:00** ⭐".
func dayCell(day int, games []model.DisplayGame) string {
	parts := []string{fmt.Sprintf("%d", day)}
	for _, g := range games {
		label := fmt.Sprintf("%s@%s %s", TriCode(g.Away), TriCode(g.Home), g.Paris.Format("15:04"))
		parts = append(parts, decorate(label, g))
	}
	return strings.Join(parts, "<br>")
}
