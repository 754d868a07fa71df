package system

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/mindpingapp/mindping/internal/cli"
	"github.com/mindpingapp/mindping/internal/models"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing database before initialization."`
	Yes   bool `help:"Skip the interactive onboarding and accept defaults."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized mindping storage at: %s\n", ctx.Store.GetConfigPath())

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if settings.Onboarded && !c.Force {
		fmt.Println("Already onboarded. Use 'mindping settings' to change preferences.")
		return nil
	}

	if !c.Yes {
		if err := runOnboardingForm(&settings); err != nil {
			return fmt.Errorf("onboarding cancelled: %w", err)
		}
	}

	settings.Onboarded = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	// Seed today's message and the forward window right away
	if settings.NotificationsEnabled {
		if err := ctx.Engine.EnsureSchedule(settings.PreferredSlots); err != nil {
			return err
		}
	}

	fmt.Println("All set. Run 'mindping today' to see your first message.")
	return nil
}

func runOnboardingForm(settings *models.Settings) error {
	slotOptions := make([]huh.Option[models.TimeSlot], 0, len(models.AllSlots))
	for _, slot := range models.AllSlots {
		r := slot.Range()
		label := fmt.Sprintf("%s (%02d:00-%02d:00)", slot, r.StartHour, r.EndHour)
		slotOptions = append(slotOptions, huh.NewOption(label, slot))
	}

	selected := settings.PreferredSlots

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Value(&settings.Nickname),
			huh.NewMultiSelect[models.TimeSlot]().
				Title("When may messages arrive?").
				Options(slotOptions...).
				Validate(func(slots []models.TimeSlot) error {
					if len(slots) == 0 {
						return fmt.Errorf("pick at least one time slot")
					}
					return nil
				}).
				Value(&selected),
			huh.NewConfirm().
				Title("Enable daily notifications?").
				Value(&settings.NotificationsEnabled),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	settings.PreferredSlots = selected
	return nil
}
