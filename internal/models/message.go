package models

import (
	"fmt"
	"time"
)

// Category classifies a catalog message
type Category string

const (
	CategoryQuestion Category = "question"
	CategoryComfort  Category = "comfort"
	CategoryWisdom   Category = "wisdom"
)

// Message is an immutable catalog entry
type Message struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Content  string   `json:"content"`
	Emoji    string   `json:"emoji,omitempty"`
}

func (m *Message) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("message id cannot be empty")
	}
	if m.Content == "" {
		return fmt.Errorf("message content cannot be empty")
	}
	switch m.Category {
	case CategoryQuestion, CategoryComfort, CategoryWisdom:
	default:
		return fmt.Errorf("invalid message category: %q", m.Category)
	}
	return nil
}

// DeliveredMessage is a message the user has actually received, as stored in
// the archive. At most one record's ReceivedAt falls on any calendar date.
type DeliveredMessage struct {
	MessageID  string    `json:"message_id"`
	Content    string    `json:"content"`
	Category   Category  `json:"category"`
	Emoji      string    `json:"emoji,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
	IsRead     bool      `json:"is_read"`
	IsFavorite bool      `json:"is_favorite"`
}

// Date returns the local calendar date the message was received on (YYYY-MM-DD)
func (d *DeliveredMessage) Date() string {
	return d.ReceivedAt.Format("2006-01-02")
}
