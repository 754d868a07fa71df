package sqlite

import (
	"fmt"
	"time"

	"github.com/mindpingapp/mindping/internal/models"
)

func (s *Store) AddTrigger(trigger models.Trigger) error {
	if err := trigger.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO triggers (id, message_id, fires_at, created_at)
		VALUES (?, ?, ?, ?)
	`,
		trigger.ID, trigger.MessageID,
		trigger.FiresAt.Format(time.RFC3339), trigger.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert trigger: %w", err)
	}
	return nil
}

func (s *Store) GetAllTriggers() ([]models.Trigger, error) {
	return s.queryTriggers(`
		SELECT id, message_id, fires_at, created_at
		FROM triggers
		ORDER BY created_at ASC
	`)
}

func (s *Store) GetDueTriggers(now time.Time) ([]models.Trigger, error) {
	return s.queryTriggers(`
		SELECT id, message_id, fires_at, created_at
		FROM triggers
		WHERE fires_at <= ?
		ORDER BY fires_at ASC
	`, now.Format(time.RFC3339))
}

func (s *Store) CancelTrigger(id string) error {
	result, err := s.db.Exec(`DELETE FROM triggers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to cancel trigger: %w", err)
	}
	return requireRow(result)
}

func (s *Store) queryTriggers(query string, args ...any) ([]models.Trigger, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query triggers: %w", err)
	}
	defer rows.Close()

	var triggers []models.Trigger
	for rows.Next() {
		var trigger models.Trigger
		var firesAtStr, createdAtStr string

		if err := rows.Scan(&trigger.ID, &trigger.MessageID, &firesAtStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan trigger: %w", err)
		}

		// A malformed fire time is surfaced as a zero instant so the engine's
		// purge pass can discard the trigger instead of the read failing
		if firesAt, err := time.Parse(time.RFC3339, firesAtStr); err == nil {
			trigger.FiresAt = firesAt
		}
		if createdAt, err := time.Parse(time.RFC3339, createdAtStr); err == nil {
			trigger.CreatedAt = createdAt
		}

		triggers = append(triggers, trigger)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating triggers: %w", err)
	}

	return triggers, nil
}
