package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/mindpingapp/mindping/internal/cli"
	"github.com/mindpingapp/mindping/internal/logger"
	"github.com/mindpingapp/mindping/internal/notifier"
	"github.com/mindpingapp/mindping/internal/storage"
)

// DispatchCmd fires due triggers as desktop banners. It is intended to be run
// from cron or a systemd timer every minute or so.
type DispatchCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

var sendBanner = func(text string) error {
	return notifier.New().Notify(text)
}

func (c *DispatchCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.NotificationsEnabled {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	due, err := ctx.Store.GetDueTriggers(time.Now())
	if err != nil {
		return fmt.Errorf("failed to load due triggers: %w", err)
	}

	if len(due) == 0 {
		if c.DryRun {
			fmt.Println("No due triggers.")
		}
		return nil
	}

	for _, trigger := range due {
		msg, ok := ctx.Catalog.Get(trigger.MessageID)
		if !ok {
			// Corrupt trigger; drop it rather than retrying forever
			logger.Warn("Due trigger references unknown message", "message_id", trigger.MessageID)
			if err := ctx.Store.CancelTrigger(trigger.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
				logger.Warn("Failed to cancel corrupt trigger", "id", trigger.ID, "error", err)
			}
			continue
		}

		body := msg.Content
		if msg.Emoji != "" {
			body = msg.Emoji + " " + msg.Content
		}

		// A dry run is a preview only: nothing may be archived or consumed
		if c.DryRun {
			fmt.Println("[DryRun] " + body)
			continue
		}

		if err := sendBanner(body); err != nil {
			// Leave the trigger in place; the next dispatch run retries
			logger.Warn("Failed to send notification", "id", trigger.ID, "error", err)
			continue
		}

		// Record the delivery so the archive and ledger stay consistent
		if err := ctx.Engine.OnNotificationEvent(trigger.MessageID); err != nil {
			logger.Error("Failed to record delivery", "message_id", trigger.MessageID, "error", err)
		}

		// OnNotificationEvent cancels matching triggers when it archives; this
		// covers the already-archived no-op path so the due trigger cannot
		// fire twice
		if err := ctx.Store.CancelTrigger(trigger.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to cancel fired trigger", "id", trigger.ID, "error", err)
		}
	}

	return nil
}
