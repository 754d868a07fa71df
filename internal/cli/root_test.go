package cli

import (
	"testing"

	"github.com/mindpingapp/mindping/internal/models"
)

func TestParseSlots(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.TimeSlot
		wantErr bool
	}{
		{name: "single", input: "morning", want: []models.TimeSlot{models.SlotMorning}},
		{name: "multiple", input: "morning,evening", want: []models.TimeSlot{models.SlotMorning, models.SlotEvening}},
		{name: "whitespace and case", input: " Morning , NIGHT ", want: []models.TimeSlot{models.SlotMorning, models.SlotNight}},
		{name: "unknown slot", input: "morning,midnight", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "only commas", input: ",,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlots(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSlots(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSlots(%q) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSlots(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseSlots(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatSlots(t *testing.T) {
	if got := FormatSlots(nil); got != "(none)" {
		t.Errorf("FormatSlots(nil) = %q, want (none)", got)
	}

	got := FormatSlots([]models.TimeSlot{models.SlotMorning, models.SlotNight})
	want := "morning (06:00-09:00), night (22:00-24:00)"
	if got != want {
		t.Errorf("FormatSlots() = %q, want %q", got, want)
	}
}
