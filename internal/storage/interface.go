package storage

import (
	"time"

	"github.com/mindpingapp/mindping/internal/models"
)

// Provider is the persistence surface the engine and CLI run against
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Archive (delivered messages)
	GetMessageForDate(date string) (models.DeliveredMessage, error)
	// PutMessage inserts or overwrites a delivered message. IsRead and
	// IsFavorite of an existing record with the same message id survive the
	// overwrite; reconciliation must not clobber user toggles.
	PutMessage(models.DeliveredMessage) error
	GetAllMessages() ([]models.DeliveredMessage, error)
	ToggleFavorite(messageID string) error
	MarkRead(messageID string) error

	// Scheduling ledger
	GetLastRunDate() (string, error)
	SetLastRunDate(date string) error
	GetAssignment(date string) (string, error)
	SetAssignment(date, messageID string) error
	ClearAssignmentsAfter(date string) error

	// Device trigger schedule
	AddTrigger(models.Trigger) error
	GetAllTriggers() ([]models.Trigger, error)
	GetDueTriggers(now time.Time) ([]models.Trigger, error)
	CancelTrigger(id string) error

	// Diary
	AddDiaryEntry(models.DiaryEntry) error
	GetDiaryEntries(startDate, endDate string) ([]models.DiaryEntry, error)
	DeleteDiaryEntry(id string) error

	// Utils
	GetConfigPath() string
}

