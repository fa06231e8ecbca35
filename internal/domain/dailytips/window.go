package dailytips

import "time"

// AnchorHour is the local hour at which one tip day rolls into the next.
const AnchorHour = 6

// WindowFor maps an instant to the day window containing it. Instants before
// 06:00 belong to the previous calendar day's window, so 05:59:59 closes a
// window and 06:00:00 opens the next one.
func WindowFor(now time.Time) DayWindow {
	year, month, day := now.Date()
	start := time.Date(year, month, day, AnchorHour, 0, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	return DayWindow{
		Start: start,
		End:   start.Add(24*time.Hour - time.Second),
	}
}
