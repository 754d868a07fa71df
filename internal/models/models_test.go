package models

import (
	"testing"
	"time"
)

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeSlot
		wantErr bool
	}{
		{name: "morning", input: "morning", want: SlotMorning},
		{name: "night", input: "night", want: SlotNight},
		{name: "unknown", input: "midnight", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "Morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeSlot(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimeSlot(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeSlot(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeSlot(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeSlotRange(t *testing.T) {
	tests := []struct {
		slot      TimeSlot
		wantStart int
		wantEnd   int
	}{
		{SlotMorning, 6, 9},
		{SlotForenoon, 9, 12},
		{SlotAfternoon, 12, 18},
		{SlotEvening, 18, 22},
		{SlotNight, 22, 24},
		{TimeSlot("garbage"), 8, 22}, // corrupted value falls back to the waking day
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			r := tt.slot.Range()
			if r.StartHour != tt.wantStart || r.EndHour != tt.wantEnd {
				t.Errorf("Range(%q) = [%d, %d), want [%d, %d)", tt.slot, r.StartHour, r.EndHour, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		wantErr bool
	}{
		{name: "valid", msg: Message{ID: "1", Category: CategoryComfort, Content: "hi"}},
		{name: "missing id", msg: Message{Category: CategoryComfort, Content: "hi"}, wantErr: true},
		{name: "missing content", msg: Message{ID: "1", Category: CategoryComfort}, wantErr: true},
		{name: "bad category", msg: Message{ID: "1", Category: "rant", Content: "hi"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTriggerValidate(t *testing.T) {
	firesAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		trigger Trigger
		wantErr bool
	}{
		{name: "valid", trigger: Trigger{ID: "t1", MessageID: "1", FiresAt: firesAt}},
		{name: "missing id", trigger: Trigger{MessageID: "1", FiresAt: firesAt}, wantErr: true},
		{name: "missing message id", trigger: Trigger{ID: "t1", FiresAt: firesAt}, wantErr: true},
		{name: "zero fire time", trigger: Trigger{ID: "t1", MessageID: "1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trigger.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTriggerDate(t *testing.T) {
	trigger := Trigger{FiresAt: time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)}
	if got := trigger.Date(); got != "2026-03-10" {
		t.Errorf("Date() = %q, want 2026-03-10", got)
	}
}

func TestDiaryEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   DiaryEntry
		wantErr bool
	}{
		{name: "valid", entry: DiaryEntry{Body: "walked a lot", Date: "2026-03-10"}},
		{name: "empty date ok", entry: DiaryEntry{Body: "walked a lot"}},
		{name: "missing body", entry: DiaryEntry{Date: "2026-03-10"}, wantErr: true},
		{name: "bad date", entry: DiaryEntry{Body: "x", Date: "10.03.2026"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
