package timeutil

import "time"

// referenceZone is the league's home-market timezone approximated with a
// fixed offset. DST transitions are ignored; all slate-date derivation goes
// through this file so the approximation can be replaced in one place.
var referenceZone = time.FixedZone("EST", -5*60*60)

// DefaultCutoffHour is the reference-zone hour before which the previous
// day's slate is still considered "today" (games running past midnight).
const DefaultCutoffHour = 5

// ReferenceNow converts t into the fixed reference zone.
func ReferenceNow(t time.Time) time.Time {
	return t.In(referenceZone)
}

// ScheduleDate returns the slate date for t. Before cutoffHour in the
// reference zone the previous day's games may still be finishing, so the
// previous day's date is returned instead.
func ScheduleDate(t time.Time, cutoffHour int) string {
	ref := ReferenceNow(t)
	if ref.Hour() < cutoffHour {
		ref = ref.AddDate(0, 0, -1)
	}
	return FormatDate(ref)
}

// Today returns t's date in the reference zone.
func Today(t time.Time) string {
	return FormatDate(ReferenceNow(t))
}

// Yesterday returns the reference-zone date one day before t.
func Yesterday(t time.Time) string {
	return FormatDate(ReferenceNow(t).AddDate(0, 0, -1))
}
