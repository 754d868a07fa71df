// Package device exposes the local notification schedule behind the narrow
// surface the engine is allowed to use: list, create, cancel.
package device

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindpingapp/mindping/internal/models"
	"github.com/mindpingapp/mindping/internal/storage"
)

// Scheduler is the device-level notification schedule. The engine reads,
// creates, and cancels triggers; it does not own their lifecycle past that.
type Scheduler interface {
	ListScheduled() ([]models.Trigger, error)
	Create(firesAt time.Time, messageID string) (string, error)
	Cancel(id string) error
}

// Local is the storage-backed scheduler used in production. Triggers persist
// in the database and are fired by the dispatch command.
type Local struct {
	store storage.Provider
	now   func() time.Time
}

func NewLocal(store storage.Provider) *Local {
	return &Local{store: store, now: time.Now}
}

func (l *Local) ListScheduled() ([]models.Trigger, error) {
	return l.store.GetAllTriggers()
}

func (l *Local) Create(firesAt time.Time, messageID string) (string, error) {
	trigger := models.Trigger{
		ID:        uuid.NewString(),
		MessageID: messageID,
		FiresAt:   firesAt,
		CreatedAt: l.now(),
	}
	if err := l.store.AddTrigger(trigger); err != nil {
		return "", fmt.Errorf("failed to create trigger: %w", err)
	}
	return trigger.ID, nil
}

func (l *Local) Cancel(id string) error {
	return l.store.CancelTrigger(id)
}
