package cli

import (
	"fmt"
	"strings"

	"github.com/mindpingapp/mindping/internal/catalog"
	"github.com/mindpingapp/mindping/internal/engine"
	"github.com/mindpingapp/mindping/internal/models"
	"github.com/mindpingapp/mindping/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Engine  *engine.Engine
	Catalog *catalog.Catalog
}

// PreferredSlots loads the user's slot preferences, or nil when notifications
// are disabled (the engine is never invoked in that case).
func (c *Context) PreferredSlots() ([]models.TimeSlot, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled {
		return nil, nil
	}
	return settings.PreferredSlots, nil
}

// ParseSlots parses a comma-separated list of time slot names
func ParseSlots(s string) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		slot, err := models.ParseTimeSlot(part)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("at least one time slot is required")
	}
	return slots, nil
}

// FormatSlots renders a slot list with hour ranges for display
func FormatSlots(slots []models.TimeSlot) string {
	if len(slots) == 0 {
		return "(none)"
	}
	var parts []string
	for _, slot := range slots {
		r := slot.Range()
		parts = append(parts, fmt.Sprintf("%s (%02d:00-%02d:00)", slot, r.StartHour, r.EndHour))
	}
	return strings.Join(parts, ", ")
}
