package handlers

import "time"

// parseDateTime combines "YYYY-MM-DD" and "HH:MM" request fields into one
// timestamp in server-local time.
func parseDateTime(date, clock string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
