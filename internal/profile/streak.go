package profile

import "time"

// dateLayout is the calendar-day format used for the last daily quiz date.
const dateLayout = "2006-01-02"

// NextStreak computes the streak value after completing a daily quiz on day
// now, given the recorded date of the previous completion. Completing twice
// on the same calendar day leaves the streak unchanged; completing on the
// following day extends it; any gap resets it to 1. Dates compare in local
// time.
func NextStreak(current int, lastDate string, now time.Time) int {
	today := now.Format(dateLayout)
	if lastDate == today {
		return current
	}
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if lastDate == yesterday {
		return current + 1
	}
	return 1
}

// Today formats now as the calendar-day string stored on the user record.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}
