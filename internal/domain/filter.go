package domain

// ReminderFilter contains filtering/pagination parameters for reminder listings.
type ReminderFilter struct {
	// Status restricts the listing to a single lifecycle state.
	// nil means all states.
	Status *Status

	// Limit is the maximum number of reminders to return. Zero means the
	// repository default.
	Limit int

	// Offset is the number of reminders to skip.
	Offset int
}

// ReminderCounts holds per-owner reminder totals for the dashboard.
type ReminderCounts struct {
	All       int
	Active    int
	Completed int
}
