package settings

import (
	"fmt"

	"github.com/mindpingapp/mindping/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Nickname             *string `help:"Set the display name."`
	Slots                *string `help:"Comma-separated preferred time slots (morning, forenoon, afternoon, evening, night)."`
	NotificationsEnabled *bool   `help:"Enable or disable notifications."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List || (c.Nickname == nil && c.Slots == nil && c.NotificationsEnabled == nil) {
		fmt.Println("Current Settings:")
		fmt.Printf("  Nickname:              %s\n", settings.Nickname)
		fmt.Printf("  Preferred Slots:       %s\n", cli.FormatSlots(settings.PreferredSlots))
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		return nil
	}

	slotsChanged := false
	if c.Nickname != nil {
		settings.Nickname = *c.Nickname
	}
	if c.Slots != nil {
		slots, err := cli.ParseSlots(*c.Slots)
		if err != nil {
			return err
		}
		settings.PreferredSlots = slots
		slotsChanged = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")

	// New slot preferences only affect future days; today's message stays
	if slotsChanged && settings.NotificationsEnabled {
		if err := ctx.Engine.RescheduleFromTomorrow(settings.PreferredSlots); err != nil {
			return err
		}
		fmt.Println("Upcoming deliveries rescheduled.")
	}

	return nil
}
