package humantime

import (
	"fmt"
	"time"
)

// DefaultDateLayout renders dates older than a week as a US short date (6/21/2025).
const DefaultDateLayout = "1/2/2006"

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	week   = 7 * day
)

// Relative renders t relative to now using DefaultDateLayout.
// Absolute dates fall on the calendar day of time.Local.
func Relative(t, now time.Time) string {
	return relative(t, now, DefaultDateLayout, time.Local)
}

// Formatter renders relative times with a configurable date layout and clock.
type Formatter struct {
	Layout string
	Now    func() time.Time
	// Location picks the calendar day of absolute dates; nil means time.Local.
	Location *time.Location
}

func NewFormatter(layout string) *Formatter {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return &Formatter{
		Layout:   layout,
		Now:      time.Now,
		Location: time.Local,
	}
}

func (f *Formatter) Format(t time.Time) string {
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	layout := f.Layout
	if layout == "" {
		layout = DefaultDateLayout
	}
	loc := f.Location
	if loc == nil {
		loc = time.Local
	}
	return relative(t, now(), layout, loc)
}

func relative(t, now time.Time, layout string, loc *time.Location) string {
	// Duration truncates toward zero, so a future t yields a negative delta
	// and falls into "just now".
	delta := int64(now.Sub(t) / time.Second)

	switch {
	case delta < minute:
		return "just now"
	case delta < hour:
		return fmt.Sprintf("%dm ago", delta/minute)
	case delta < day:
		return fmt.Sprintf("%dh ago", delta/hour)
	case delta < week:
		return fmt.Sprintf("%dd ago", delta/day)
	default:
		return t.In(loc).Format(layout)
	}
}
