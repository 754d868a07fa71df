package sqlite

import (
	"fmt"
	"strings"

	"github.com/mindpingapp/mindping/internal/constants"
	"github.com/mindpingapp/mindping/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingNickname:
			settings.Nickname = value
		case constants.SettingPreferredSlots:
			for _, part := range strings.Split(value, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				slot, err := models.ParseTimeSlot(part)
				if err != nil {
					// A corrupted slot value should not wedge the whole
					// settings read
					continue
				}
				settings.PreferredSlots = append(settings.PreferredSlots, slot)
			}
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingOnboarded:
			settings.Onboarded = value == "true"
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	slots := make([]string, 0, len(settings.PreferredSlots))
	for _, slot := range settings.PreferredSlots {
		slots = append(slots, string(slot))
	}

	if _, err := stmt.Exec(constants.SettingNickname, settings.Nickname); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingPreferredSlots, strings.Join(slots, ",")); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingNotificationsEnabled, fmt.Sprintf("%v", settings.NotificationsEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingOnboarded, fmt.Sprintf("%v", settings.Onboarded)); err != nil {
		return err
	}

	return tx.Commit()
}
