package schedule

import (
	"fmt"
	"sort"

	"github.com/mindpingapp/mindping/internal/cli"
)

// SyncCmd reconciles today's message and fills the forward window. Invoked
// manually or by desktop session hooks; the same entry point the app calls on
// foreground.
type SyncCmd struct{}

func (c *SyncCmd) Run(ctx *cli.Context) error {
	slots, err := ctx.PreferredSlots()
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Println("Notifications are disabled; nothing to schedule.")
		return nil
	}

	if err := ctx.Engine.EnsureSchedule(slots); err != nil {
		return err
	}
	fmt.Println("Schedule is up to date.")
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	triggers, err := ctx.Store.GetAllTriggers()
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	if len(triggers) == 0 {
		fmt.Println("No pending deliveries.")
		return nil
	}

	sort.Slice(triggers, func(i, j int) bool {
		return triggers[i].FiresAt.Before(triggers[j].FiresAt)
	})

	fmt.Println("Pending deliveries:")
	for _, t := range triggers {
		fmt.Printf("  %s  message %s\n", t.FiresAt.Format("Mon Jan 2 15:04"), t.MessageID)
	}
	return nil
}
