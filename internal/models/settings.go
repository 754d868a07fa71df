package models

// Settings represents application-wide settings
type Settings struct {
	Nickname             string     `json:"nickname"`              // display name chosen during onboarding
	PreferredSlots       []TimeSlot `json:"preferred_slots"`       // time slots deliveries may land in
	NotificationsEnabled bool       `json:"notifications_enabled"` // whether notifications are enabled
	Onboarded            bool       `json:"onboarded"`             // whether onboarding has completed
}

// DefaultPreferredSlots is the slot selection applied before onboarding
var DefaultPreferredSlots = []TimeSlot{SlotForenoon, SlotAfternoon, SlotEvening}
