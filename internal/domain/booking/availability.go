package booking

import "time"

// SlotStep is the fixed walk increment over a stylist's day, independent
// of the service duration.
const SlotStep = time.Hour

type TimeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	StylistID uint      `json:"stylist_id"`
}

type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DayWindow maps a stylist's whole-hour working window onto a calendar day.
func DayWindow(date time.Time, startHour, endHour int) (time.Time, time.Time) {
	loc := date.Location()
	open := time.Date(date.Year(), date.Month(), date.Day(), startHour, 0, 0, 0, loc)
	close := time.Date(date.Year(), date.Month(), date.Day(), endHour, 0, 0, 0, loc)
	return open, close
}

// ComputeSlots walks [dayStart, dayEnd) in SlotStep increments and emits
// every candidate interval of the given duration that fits the window and
// does not overlap a busy interval. Busy intervals are every non-cancelled
// booking; pending ones block too, so an unpaid booking cannot be
// double-booked while payment is in flight. The result is ordered by start
// time ascending.
func ComputeSlots(dayStart, dayEnd time.Time, duration time.Duration, busy []Interval) []TimeSlot {
	slots := []TimeSlot{}

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(SlotStep) {
		slotStart := cur
		slotEnd := cur.Add(duration)

		conflict := false
		for _, b := range busy {
			if Overlaps(slotStart, slotEnd, b.Start, b.End) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				StartTime: slotStart,
				EndTime:   slotEnd,
			})
		}
	}

	return slots
}

// WithinWindow reports whether [start, end) fits the stylist's working
// window on start's day.
func WithinWindow(start, end time.Time, startHour, endHour int) bool {
	open, close := DayWindow(start, startHour, endHour)
	return !start.Before(open) && !end.After(close)
}
