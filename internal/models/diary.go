package models

import (
	"fmt"
	"time"
)

// DiaryEntry is a short journal note attached to a calendar date
type DiaryEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Mood      string    `json:"mood,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *DiaryEntry) Validate() error {
	if e.Body == "" {
		return fmt.Errorf("diary entry body cannot be empty")
	}
	if e.Date != "" {
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}
