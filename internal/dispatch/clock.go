// Package dispatch selects reminders due today and delivers their
// notification emails.
package dispatch

import "time"

// Clock abstracts time.Now so runs can be tested at fixed instants.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
