package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mindpingapp/mindping/internal/constants"
	"github.com/mindpingapp/mindping/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

func (s *Store) GetMessageForDate(date string) (models.DeliveredMessage, error) {
	row := s.db.QueryRow(`
		SELECT message_id, content, category, emoji, received_at, is_read, is_favorite
		FROM archive
		WHERE substr(received_at, 1, 10) = ?
		ORDER BY received_at DESC
		LIMIT 1
	`, date)

	msg, err := scanDelivered(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DeliveredMessage{}, ErrNotFound
	}
	if err != nil {
		return models.DeliveredMessage{}, fmt.Errorf("failed to get message for date %s: %w", date, err)
	}
	return msg, nil
}

// PutMessage inserts or overwrites a delivered message. User-owned flags on an
// existing record (is_read, is_favorite) survive the overwrite.
func (s *Store) PutMessage(msg models.DeliveredMessage) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO archive (message_id, content, category, emoji, received_at, is_read, is_favorite)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(message_id) DO UPDATE SET
			content = excluded.content,
			category = excluded.category,
			emoji = excluded.emoji,
			received_at = excluded.received_at
	`,
		msg.MessageID, msg.Content, string(msg.Category), msg.Emoji,
		msg.ReceivedAt.Format(time.RFC3339), msg.IsRead, msg.IsFavorite,
	)
	if err != nil {
		return fmt.Errorf("failed to put message: %w", err)
	}

	// Retention cap: keep only the most recent records
	_, err = tx.Exec(`
		DELETE FROM archive WHERE message_id NOT IN (
			SELECT message_id FROM archive ORDER BY received_at DESC LIMIT ?
		)
	`, constants.ArchiveRetentionCap)
	if err != nil {
		return fmt.Errorf("failed to apply retention cap: %w", err)
	}

	return tx.Commit()
}

func (s *Store) GetAllMessages() ([]models.DeliveredMessage, error) {
	rows, err := s.db.Query(`
		SELECT message_id, content, category, emoji, received_at, is_read, is_favorite
		FROM archive
		ORDER BY received_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	var messages []models.DeliveredMessage
	for rows.Next() {
		msg, err := scanDelivered(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating archive: %w", err)
	}

	return messages, nil
}

func (s *Store) ToggleFavorite(messageID string) error {
	result, err := s.db.Exec(`UPDATE archive SET is_favorite = NOT is_favorite WHERE message_id = ?`, messageID)
	if err != nil {
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return requireRow(result)
}

func (s *Store) MarkRead(messageID string) error {
	result, err := s.db.Exec(`UPDATE archive SET is_read = 1 WHERE message_id = ?`, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark read: %w", err)
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDelivered(row rowScanner) (models.DeliveredMessage, error) {
	var msg models.DeliveredMessage
	var category, receivedAtStr string

	if err := row.Scan(&msg.MessageID, &msg.Content, &category, &msg.Emoji, &receivedAtStr, &msg.IsRead, &msg.IsFavorite); err != nil {
		return models.DeliveredMessage{}, err
	}

	msg.Category = models.Category(category)

	receivedAt, err := time.Parse(time.RFC3339, receivedAtStr)
	if err != nil {
		return models.DeliveredMessage{}, fmt.Errorf("failed to parse received_at: %w", err)
	}
	msg.ReceivedAt = receivedAt

	return msg, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
