package models

import "fmt"

// TimeSlot is a named hour range from which a delivery instant is drawn
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotForenoon  TimeSlot = "forenoon"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotNight     TimeSlot = "night"
)

// SlotRange holds the [StartHour, EndHour) bounds of a time slot
type SlotRange struct {
	StartHour int
	EndHour   int
}

// SlotRanges maps each slot to its fixed hour range
var SlotRanges = map[TimeSlot]SlotRange{
	SlotMorning:   {StartHour: 6, EndHour: 9},
	SlotForenoon:  {StartHour: 9, EndHour: 12},
	SlotAfternoon: {StartHour: 12, EndHour: 18},
	SlotEvening:   {StartHour: 18, EndHour: 22},
	SlotNight:     {StartHour: 22, EndHour: 24},
}

// AllSlots lists every slot in day order
var AllSlots = []TimeSlot{SlotMorning, SlotForenoon, SlotAfternoon, SlotEvening, SlotNight}

// ParseTimeSlot converts a string into a TimeSlot, validating it against the known set
func ParseTimeSlot(s string) (TimeSlot, error) {
	slot := TimeSlot(s)
	if _, ok := SlotRanges[slot]; !ok {
		return "", fmt.Errorf("unknown time slot: %q", s)
	}
	return slot, nil
}

// Range returns the hour bounds for the slot. Unknown slots fall back to the
// whole waking day so a corrupted setting still yields a usable window.
func (s TimeSlot) Range() SlotRange {
	if r, ok := SlotRanges[s]; ok {
		return r
	}
	return SlotRange{StartHour: 8, EndHour: 22}
}
