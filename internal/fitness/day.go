package fitness

import "time"

// DateLayout is how log dates are rendered to clients.
const DateLayout = "2006-01-02"

// DayStart truncates t to local midnight of its calendar day.
func DayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// DayRange returns the half-open interval [start, end) covering t's day.
func DayRange(t time.Time) (start, end time.Time) {
	start = DayStart(t)
	return start, start.AddDate(0, 0, 1)
}
