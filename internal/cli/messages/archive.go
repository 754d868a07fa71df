package messages

import (
	"fmt"

	"github.com/mindpingapp/mindping/internal/cli"
)

type ArchiveListCmd struct {
	Favorites bool `help:"Show only favorited messages."`
	Limit     int  `help:"Maximum number of messages to show." default:"20"`
}

func (c *ArchiveListCmd) Run(ctx *cli.Context) error {
	all, err := ctx.Store.GetAllMessages()
	if err != nil {
		return fmt.Errorf("failed to load archive: %w", err)
	}

	shown := 0
	for _, msg := range all {
		if c.Favorites && !msg.IsFavorite {
			continue
		}
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		printMessage(msg)
		fmt.Println()
		shown++
	}

	if shown == 0 {
		fmt.Println("Nothing in the archive yet.")
	}
	return nil
}

type ArchiveFavCmd struct {
	ID string `arg:"" help:"Message id to toggle favorite on."`
}

func (c *ArchiveFavCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.ToggleFavorite(c.ID); err != nil {
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}
	fmt.Println("Favorite toggled.")
	return nil
}

type ArchiveReadCmd struct {
	ID string `arg:"" help:"Message id to mark as read."`
}

func (c *ArchiveReadCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.MarkRead(c.ID); err != nil {
		return fmt.Errorf("failed to mark read: %w", err)
	}
	fmt.Println("Marked as read.")
	return nil
}
