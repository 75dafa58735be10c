package schedule

import (
	"fmt"
	"time"
)

// Converter maps schedule timestamps into the display timezone. The
// conversion itself is pure: both zones' DST rules are applied by the
// stdlib tzdata for the instant in question, so the offset between the
// source zone and the display zone varies correctly across the weeks
// where only one side has shifted.
type Converter struct {
	loc *time.Location
}

// NewConverter resolves the display zone by IANA name.
func NewConverter(zone string) (*Converter, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return nil, err
	}
	return &Converter{loc: loc}, nil
}

// Civil returns t expressed as civil date+time in the display zone.
func (c *Converter) Civil(t time.Time) time.Time {
	return t.In(c.loc)
}

// Location exposes the resolved display zone.
func (c *Converter) Location() *time.Location {
	return c.loc
}

// LoadZone resolves an IANA zone name, wrapping the failure with the
// offending name.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
