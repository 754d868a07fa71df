package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
)

const lastRunDateKey = "last_run_date"

func (s *Store) GetLastRunDate() (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM ledger WHERE key = ?`, lastRunDateKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last run date: %w", err)
	}
	return value, nil
}

func (s *Store) SetLastRunDate(date string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO ledger (key, value) VALUES (?, ?)`, lastRunDateKey, date)
	if err != nil {
		return fmt.Errorf("failed to set last run date: %w", err)
	}
	return nil
}

func (s *Store) GetAssignment(date string) (string, error) {
	var messageID string
	err := s.db.QueryRow(`SELECT message_id FROM assignments WHERE date = ?`, date).Scan(&messageID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get assignment for %s: %w", date, err)
	}
	return messageID, nil
}

func (s *Store) SetAssignment(date, messageID string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO assignments (date, message_id) VALUES (?, ?)`, date, messageID)
	if err != nil {
		return fmt.Errorf("failed to set assignment for %s: %w", date, err)
	}
	return nil
}

func (s *Store) ClearAssignmentsAfter(date string) error {
	_, err := s.db.Exec(`DELETE FROM assignments WHERE date > ?`, date)
	if err != nil {
		return fmt.Errorf("failed to clear assignments after %s: %w", date, err)
	}
	return nil
}
