package dispatch

import "time"

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the local calendar day containing now in the given
// location. End is the start of the next day, so DST transitions keep the
// interval contiguous with the neighbouring days.
func DayWindow(now time.Time, loc *time.Location) Window {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
