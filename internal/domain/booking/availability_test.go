package booking

import (
	"testing"
	"time"
)

func day(hour, min int) time.Time {
	return time.Date(2026, time.September, 14, hour, min, 0, 0, time.UTC)
}

func TestComputeSlotsFullDay(t *testing.T) {
	open, close := DayWindow(day(0, 0), 9, 20)

	slots := ComputeSlots(open, close, 60*time.Minute, nil)

	if len(slots) != 11 {
		t.Fatalf("expected 11 slots for 9-20 with a 60-minute service, got %d", len(slots))
	}
	if !slots[0].StartTime.Equal(day(9, 0)) {
		t.Fatalf("first slot starts at %v, want 09:00", slots[0].StartTime)
	}
	if !slots[10].StartTime.Equal(day(19, 0)) {
		t.Fatalf("last slot starts at %v, want 19:00", slots[10].StartTime)
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].StartTime.After(slots[i-1].StartTime) {
			t.Fatalf("slots out of order at index %d", i)
		}
		if got := slots[i].StartTime.Sub(slots[i-1].StartTime); got != SlotStep {
			t.Fatalf("slot step %v, want %v", got, SlotStep)
		}
	}
}

func TestComputeSlotsExcludesOverlaps(t *testing.T) {
	open, close := DayWindow(day(0, 0), 9, 20)
	busy := []Interval{
		{Start: day(10, 0), End: day(11, 0)},
		{Start: day(14, 30), End: day(15, 30)},
	}

	slots := ComputeSlots(open, close, 60*time.Minute, busy)

	for _, s := range slots {
		for _, b := range busy {
			if Overlaps(s.StartTime, s.EndTime, b.Start, b.End) {
				t.Fatalf("slot %v-%v overlaps busy %v-%v", s.StartTime, s.EndTime, b.Start, b.End)
			}
		}
	}

	// 10:00 is fully booked, 14:00 and 15:00 clip the 14:30 booking.
	if len(slots) != 8 {
		t.Fatalf("expected 8 free slots, got %d", len(slots))
	}
}

func TestComputeSlotsLongServiceClampsToClose(t *testing.T) {
	open, close := DayWindow(day(0, 0), 9, 12)

	slots := ComputeSlots(open, close, 120*time.Minute, nil)

	// 9:00-11:00 and 10:00-12:00 fit; 11:00-13:00 does not.
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !slots[1].EndTime.Equal(day(12, 0)) {
		t.Fatalf("last slot may end exactly at close, got %v", slots[1].EndTime)
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	cases := []struct {
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{day(10, 30), day(11, 30), day(10, 0), day(11, 0), true},
		{day(11, 0), day(12, 0), day(10, 0), day(11, 0), false}, // touching ends
		{day(9, 0), day(10, 0), day(10, 0), day(11, 0), false},
		{day(10, 0), day(11, 0), day(10, 15), day(10, 45), true}, // containment
		{day(10, 15), day(10, 45), day(10, 0), day(11, 0), true},
	}

	for _, tt := range cases {
		if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
			t.Fatalf("Overlaps(%v,%v,%v,%v)=%v, want %v",
				tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
		}
	}
}

func TestWithinWindow(t *testing.T) {
	if !WithinWindow(day(9, 0), day(10, 0), 9, 20) {
		t.Fatalf("opening slot should be inside the window")
	}
	if !WithinWindow(day(19, 0), day(20, 0), 9, 20) {
		t.Fatalf("slot ending exactly at close should be inside the window")
	}
	if WithinWindow(day(8, 0), day(9, 0), 9, 20) {
		t.Fatalf("slot before open should be outside the window")
	}
	if WithinWindow(day(19, 30), day(20, 30), 9, 20) {
		t.Fatalf("slot running past close should be outside the window")
	}
}
