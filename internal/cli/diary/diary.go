package diary

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindpingapp/mindping/internal/cli"
	"github.com/mindpingapp/mindping/internal/constants"
	"github.com/mindpingapp/mindping/internal/models"
)

type AddCmd struct {
	Body string `arg:"" help:"Diary entry text."`
	Mood string `help:"Optional mood label (e.g. calm, tired, hopeful)."`
	Date string `help:"Entry date (YYYY-MM-DD). Defaults to today."`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = time.Now().Format(constants.DateFormat)
	}

	entry := models.DiaryEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Mood:      c.Mood,
		Body:      c.Body,
		CreatedAt: time.Now(),
	}

	if err := ctx.Store.AddDiaryEntry(entry); err != nil {
		return fmt.Errorf("failed to add diary entry: %w", err)
	}
	fmt.Println("Diary entry saved.")
	return nil
}

type ListCmd struct {
	Days int `help:"How many days back to show." default:"7"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	now := time.Now()
	start := now.AddDate(0, 0, -c.Days).Format(constants.DateFormat)
	end := now.Format(constants.DateFormat)

	entries, err := ctx.Store.GetDiaryEntries(start, end)
	if err != nil {
		return fmt.Errorf("failed to load diary entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No diary entries in this range.")
		return nil
	}

	for _, entry := range entries {
		if entry.Mood != "" {
			fmt.Printf("%s [%s]\n", entry.Date, entry.Mood)
		} else {
			fmt.Println(entry.Date)
		}
		fmt.Printf("  %s\n\n", entry.Body)
	}
	return nil
}
