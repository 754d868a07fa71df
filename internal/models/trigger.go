package models

import (
	"fmt"
	"time"
)

// Trigger is a pending scheduled delivery, the on-device analogue of a local
// notification request. The engine reads, creates, and cancels triggers but
// does not own their lifecycle past that.
type Trigger struct {
	ID        string    `json:"id"`
	MessageID string    `json:"message_id"`
	FiresAt   time.Time `json:"fires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Trigger) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("trigger id cannot be empty")
	}
	if t.MessageID == "" {
		return fmt.Errorf("trigger message id cannot be empty")
	}
	if t.FiresAt.IsZero() {
		return fmt.Errorf("trigger fire time cannot be zero")
	}
	return nil
}

// Date returns the local calendar date the trigger fires on (YYYY-MM-DD)
func (t *Trigger) Date() string {
	return t.FiresAt.Format("2006-01-02")
}
