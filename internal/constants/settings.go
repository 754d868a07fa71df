package constants

const (
	// Settings keys
	SettingNickname             = "nickname"
	SettingPreferredSlots       = "preferred_slots"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingOnboarded            = "onboarded"

	// Default Settings Values
	DefaultNotificationsEnabled = true
)
