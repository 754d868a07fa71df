package sqlite

import (
	"fmt"
	"time"

	"github.com/mindpingapp/mindping/internal/models"
)

func (s *Store) AddDiaryEntry(entry models.DiaryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO diary (id, date, mood, body, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		entry.ID, entry.Date, entry.Mood, entry.Body, entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert diary entry: %w", err)
	}
	return nil
}

func (s *Store) GetDiaryEntries(startDate, endDate string) ([]models.DiaryEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, mood, body, created_at
		FROM diary
		WHERE date >= ? AND date <= ?
		ORDER BY date DESC, created_at DESC
	`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query diary entries: %w", err)
	}
	defer rows.Close()

	var entries []models.DiaryEntry
	for rows.Next() {
		var entry models.DiaryEntry
		var createdAtStr string

		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Mood, &entry.Body, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan diary entry: %w", err)
		}

		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entry.CreatedAt = createdAt

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating diary entries: %w", err)
	}

	return entries, nil
}

func (s *Store) DeleteDiaryEntry(id string) error {
	result, err := s.db.Exec(`DELETE FROM diary WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete diary entry: %w", err)
	}
	return requireRow(result)
}
