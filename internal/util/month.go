package util

import "time"

// MonthLabel formats a year/month pair as the trend bucket label, e.g. "Apr 25".
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}

// BeforeYearMonth reports whether year a/month a is chronologically before
// year b/month b.
func BeforeYearMonth(aYear int, aMonth time.Month, bYear int, bMonth time.Month) bool {
	if aYear != bYear {
		return aYear < bYear
	}
	return aMonth < bMonth
}
