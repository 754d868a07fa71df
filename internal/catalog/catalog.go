// Package catalog holds the immutable set of comfort message templates the
// scheduler draws from.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/mindpingapp/mindping/internal/models"
)

//go:embed data/messages.json
var messagesJSON []byte

// Catalog is a read-only message lookup
type Catalog struct {
	messages []models.Message
	byID     map[string]models.Message
}

// Load parses the embedded message catalog. Called once at startup.
func Load() (*Catalog, error) {
	var messages []models.Message
	if err := json.Unmarshal(messagesJSON, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}
	return New(messages)
}

// New builds a catalog from an explicit message set (tests inject small ones)
func New(messages []models.Message) (*Catalog, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("message catalog is empty")
	}

	byID := make(map[string]models.Message, len(messages))
	for i := range messages {
		if err := messages[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog message at index %d: %w", i, err)
		}
		if _, exists := byID[messages[i].ID]; exists {
			return nil, fmt.Errorf("duplicate catalog message id: %s", messages[i].ID)
		}
		byID[messages[i].ID] = messages[i]
	}

	return &Catalog{messages: messages, byID: byID}, nil
}

// Get looks up a message by id
func (c *Catalog) Get(id string) (models.Message, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// All returns every message in catalog order. Callers must not mutate the slice.
func (c *Catalog) All() []models.Message {
	return c.messages
}

// Len returns the catalog size
func (c *Catalog) Len() int {
	return len(c.messages)
}
