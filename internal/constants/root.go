package constants

import "time"

const (
	AppName           = "mindping"
	DefaultConfigPath = "~/.config/mindping/mindping.db"
	Version           = "v0.3.1"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// ForwardWindowDays is how many days past today the schedule must cover
	ForwardWindowDays = 7

	// ArchiveRetentionCap is the maximum number of delivered messages kept
	ArchiveRetentionCap = 100

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "mindping-tray.lock"
	NotificationDurationMs = 8000
	TrayAppIdentifier      = "com.mindpingapp.mindping"
	NotificationTitle      = "mindping"
)
