package report

import (
	"fmt"
	"time"
)

// Window is an inclusive time-of-day range in the display zone. Games
// starting exactly on either bound are included; the date never
// matters.
type Window struct {
	start int // seconds since midnight
	end   int
}

// NewWindow parses "HH:MM" or "HH:MM:SS" bounds.
func NewWindow(start, end string) (Window, error) {
	s, err := parseClock(start)
	if err != nil {
		return Window{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return Window{}, err
	}
	if e < s {
		return Window{}, fmt.Errorf("viewing window ends before it starts: %s > %s", start, end)
	}
	return Window{start: s, end: e}, nil
}

// Include reports whether t's time-of-day lies inside the window. The
// full time-of-day is compared, seconds included.
func (w Window) Include(t time.Time) bool {
	sod := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return sod >= w.start && sod <= w.end
}

func (w Window) String() string {
	return clockString(w.start) + "-" + clockString(w.end)
}

func parseClock(s string) (int, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
		}
	}
	return 0, fmt.Errorf("invalid clock value %q (want HH:MM)", s)
}

func clockString(sod int) string {
	return fmt.Sprintf("%02d:%02d", sod/3600, sod%3600/60)
}
