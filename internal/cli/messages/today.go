package messages

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindpingapp/mindping/internal/cli"
	"github.com/mindpingapp/mindping/internal/constants"
	"github.com/mindpingapp/mindping/internal/models"
	"github.com/mindpingapp/mindping/internal/storage"
)

var (
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	contentStyle  = lipgloss.NewStyle().Width(72).PaddingLeft(2)
	metaStyle     = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
)

type TodayCmd struct {
	MarkRead bool `help:"Mark today's message as read."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	// Opening the app is the foreground event: reconcile before rendering
	slots, err := ctx.PreferredSlots()
	if err != nil {
		return err
	}
	if len(slots) > 0 {
		if err := ctx.Engine.EnsureSchedule(slots); err != nil {
			return err
		}
	}

	today := time.Now().Format(constants.DateFormat)
	msg, err := ctx.Store.GetMessageForDate(today)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Println("No message yet today. It's on its way.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get today's message: %w", err)
	}

	printMessage(msg)

	if c.MarkRead && !msg.IsRead {
		if err := ctx.Store.MarkRead(msg.MessageID); err != nil {
			return fmt.Errorf("failed to mark message read: %w", err)
		}
	}

	return nil
}

func printMessage(msg models.DeliveredMessage) {
	badge := categoryStyle.Render(fmt.Sprintf("[%s]", msg.Category))
	fav := ""
	if msg.IsFavorite {
		fav = " ★"
	}

	fmt.Printf("%s%s\n", badge, fav)
	body := msg.Content
	if msg.Emoji != "" {
		body = msg.Emoji + " " + msg.Content
	}
	fmt.Println(contentStyle.Render(body))
	fmt.Println(metaStyle.Render(msg.ReceivedAt.Format("Mon Jan 2 15:04")))
}
