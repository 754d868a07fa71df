// Package engine orchestrates the daily message schedule: it reconciles
// "today" across the archive, the scheduling ledger, and the device trigger
// schedule, and keeps a rolling forward window of pending deliveries.
package engine

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/mindpingapp/mindping/internal/catalog"
	"github.com/mindpingapp/mindping/internal/constants"
	"github.com/mindpingapp/mindping/internal/device"
	"github.com/mindpingapp/mindping/internal/logger"
	"github.com/mindpingapp/mindping/internal/models"
	"github.com/mindpingapp/mindping/internal/selection"
	"github.com/mindpingapp/mindping/internal/storage"
)

// Engine reconciles the three sources of scheduling truth. All mutation is
// serialized by a single-flight mutex; concurrent callers no-op.
type Engine struct {
	store   storage.Provider
	device  device.Scheduler
	catalog *catalog.Catalog

	mu  sync.Mutex
	now func() time.Time
	rng *rand.Rand
}

// Option configures an Engine
type Option func(*Engine)

// WithClock overrides the engine's time source
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRand overrides the engine's randomness source
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func New(store storage.Provider, dev device.Scheduler, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		device:  dev,
		catalog: cat,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnsureSchedule is the primary entry point, invoked on app foreground and
// from notification callbacks. It reconciles today's message and guarantees
// the forward window is covered. The operation is idempotent; any transient
// failure is logged and left for the next invocation to retry.
func (e *Engine) EnsureSchedule(slots []models.TimeSlot) error {
	if !e.mu.TryLock() {
		logger.Debug("Schedule run already in flight, skipping")
		return nil
	}
	defer e.mu.Unlock()

	return e.run(slots, false)
}

// run does the actual reconciliation. Callers hold e.mu. force skips the
// already-ran-today fast path so a reschedule can regenerate the window
// without disturbing the ledger marker.
func (e *Engine) run(slots []models.TimeSlot, force bool) error {
	// Notifications are effectively off without any slot to deliver into
	if len(slots) == 0 {
		return nil
	}

	now := e.now()
	today := now.Format(constants.DateFormat)

	todayMsg, err := e.store.GetMessageForDate(today)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.Error("Failed to read archive for today", "error", err)
		return nil
	}
	hasToday := err == nil

	// Durable already-ran-today marker: today is archived and the ledger was
	// stamped by a prior run, so there is nothing left to do
	if hasToday && !force {
		if lastRun, err := e.store.GetLastRunDate(); err == nil && lastRun == today {
			logger.Debug("Already scheduled today, skipping", "date", today)
			return nil
		}
	}

	pending, err := e.purgeTriggers()
	if err != nil {
		logger.Error("Failed to purge device schedule", "error", err)
		return nil
	}

	if !hasToday {
		pending = e.reconcileToday(now, today, pending)
	} else {
		logger.Debug("Today's message already archived", "date", today, "message_id", todayMsg.MessageID)
	}

	e.fillForwardWindow(now, slots, pending)

	if err := e.store.SetLastRunDate(today); err != nil {
		logger.Error("Failed to stamp last run date", "error", err)
	}

	return nil
}

// RescheduleFromTomorrow cancels every pending trigger strictly after today
// and regenerates the forward window under new slot preferences. Today's
// delivered state is never touched.
func (e *Engine) RescheduleFromTomorrow(slots []models.TimeSlot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.now().Format(constants.DateFormat)

	triggers, err := e.device.ListScheduled()
	if err != nil {
		logger.Error("Failed to list device schedule", "error", err)
		return nil
	}

	for _, t := range triggers {
		if t.Date() > today {
			if err := e.device.Cancel(t.ID); err != nil {
				logger.Warn("Failed to cancel trigger", "id", t.ID, "error", err)
			}
		}
	}

	if err := e.store.ClearAssignmentsAfter(today); err != nil {
		logger.Error("Failed to clear forward assignments", "error", err)
	}

	return e.run(slots, true)
}

// OnNotificationEvent records a delivery reported by the notification
// subsystem (banner received or tapped). Duplicate reports for a day that is
// already archived are no-ops.
func (e *Engine) OnNotificationEvent(messageID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	today := now.Format(constants.DateFormat)

	if _, err := e.store.GetMessageForDate(today); err == nil {
		logger.Debug("Today already archived, ignoring notification event", "message_id", messageID)
		return nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		// A failed read proves nothing about today; writing anyway could
		// produce a second record for the day
		logger.Error("Failed to read archive for today", "error", err)
		return nil
	}

	msg, ok := e.catalog.Get(messageID)
	if !ok {
		logger.Warn("Notification event for unknown message id", "message_id", messageID)
		return nil
	}

	if err := e.archive(msg, now, today); err != nil {
		logger.Error("Failed to archive delivered message", "error", err)
		return nil
	}

	// A native banner for the same logical delivery must not fire again
	if triggers, err := e.device.ListScheduled(); err == nil {
		for _, t := range triggers {
			if t.MessageID == messageID {
				if err := e.device.Cancel(t.ID); err != nil {
					logger.Warn("Failed to cancel delivered trigger", "id", t.ID, "error", err)
				}
			}
		}
	}

	return nil
}

// purgeTriggers drops malformed triggers and collapses per-date duplicates to
// the earliest-created one, returning the surviving schedule.
func (e *Engine) purgeTriggers() ([]models.Trigger, error) {
	triggers, err := e.device.ListScheduled()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.Trigger)
	for _, t := range triggers {
		if t.FiresAt.IsZero() {
			logger.Warn("Discarding trigger with malformed fire time", "id", t.ID)
			if err := e.device.Cancel(t.ID); err != nil {
				logger.Warn("Failed to cancel malformed trigger", "id", t.ID, "error", err)
			}
			continue
		}
		byDate[t.Date()] = append(byDate[t.Date()], t)
	}

	var surviving []models.Trigger
	for date, group := range byDate {
		sort.Slice(group, func(i, j int) bool {
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})
		if len(group) > 1 {
			logger.Info("Purging duplicate triggers", "date", date, "count", len(group)-1)
			for _, dup := range group[1:] {
				if err := e.device.Cancel(dup.ID); err != nil {
					logger.Warn("Failed to cancel duplicate trigger", "id", dup.ID, "error", err)
				}
			}
		}
		surviving = append(surviving, group[0])
	}

	return surviving, nil
}

// reconcileToday derives today's delivered message from the best available
// source: a pending device trigger for today, then the ledger, then a fresh
// selection. Returns the pending schedule minus any trigger consumed.
func (e *Engine) reconcileToday(now time.Time, today string, pending []models.Trigger) []models.Trigger {
	remaining := pending[:0:0]
	var todayTrigger *models.Trigger
	for _, t := range pending {
		if t.Date() == today && todayTrigger == nil {
			trigger := t
			todayTrigger = &trigger
			continue
		}
		remaining = append(remaining, t)
	}

	// A trigger scheduled for today means the message "arrived"; archive it
	// at its intended fire time and cancel the native banner so it cannot
	// double-notify later
	if todayTrigger != nil {
		if msg, ok := e.catalog.Get(todayTrigger.MessageID); ok {
			if err := e.archive(msg, todayTrigger.FiresAt, today); err != nil {
				logger.Error("Failed to archive today's trigger", "error", err)
				return append(remaining, *todayTrigger)
			}
			if err := e.device.Cancel(todayTrigger.ID); err != nil {
				logger.Warn("Failed to cancel today's trigger", "id", todayTrigger.ID, "error", err)
			}
			return remaining
		}
		// Unknown message id: corrupt trigger, drop it and synthesize below
		logger.Warn("Today's trigger references unknown message", "message_id", todayTrigger.MessageID)
		if err := e.device.Cancel(todayTrigger.ID); err != nil {
			logger.Warn("Failed to cancel corrupt trigger", "id", todayTrigger.ID, "error", err)
		}
	}

	// Nothing pending for today: synthesize an immediate delivery. The ledger
	// is consulted first so a rerun after an externally cleared trigger keeps
	// the same message.
	var msg models.Message
	if assignedID, err := e.store.GetAssignment(today); err == nil {
		if m, ok := e.catalog.Get(assignedID); ok {
			msg = m
		}
	}
	if msg.ID == "" {
		msg = e.pick(excludeIDs(remaining))
	}

	// Backdated a minute so the record reads as already arrived
	if err := e.archive(msg, now.Add(-time.Minute), today); err != nil {
		logger.Error("Failed to archive synthesized message", "error", err)
	}

	return remaining
}

// fillForwardWindow schedules a trigger for each of the next 7 days that does
// not already have one.
func (e *Engine) fillForwardWindow(now time.Time, slots []models.TimeSlot, pending []models.Trigger) {
	assigned := make(map[string]models.Message)
	for _, t := range pending {
		if msg, ok := e.catalog.Get(t.MessageID); ok {
			assigned[t.Date()] = msg
		}
	}
	today := now.Format(constants.DateFormat)
	if m, err := e.store.GetMessageForDate(today); err == nil {
		if msg, ok := e.catalog.Get(m.MessageID); ok {
			assigned[today] = msg
		}
	}

	windowIDs := excludeIDs(pending)

	for i := 1; i <= constants.ForwardWindowDays; i++ {
		target := now.AddDate(0, 0, i)
		date := target.Format(constants.DateFormat)
		if _, exists := assigned[date]; exists {
			continue
		}

		prevDate := now.AddDate(0, 0, i-1).Format(constants.DateFormat)
		var lastID string
		var lastCategory models.Category
		if prev, ok := assigned[prevDate]; ok {
			lastID = prev.ID
			lastCategory = prev.Category
		}

		delivered, err := e.deliveredIDs()
		if err != nil {
			logger.Error("Failed to read archive for selection", "error", err)
			return
		}

		msg := selection.Pick(e.rng, e.catalog, delivered, windowIDs, lastID, lastCategory)
		firesAt := e.randomInstantInSlot(slots[e.rng.Intn(len(slots))], target)

		if _, err := e.device.Create(firesAt, msg.ID); err != nil {
			logger.Error("Failed to create trigger", "date", date, "error", err)
			return
		}
		if err := e.store.SetAssignment(date, msg.ID); err != nil {
			logger.Error("Failed to record assignment", "date", date, "error", err)
		}

		logger.Debug("Scheduled delivery", "date", date, "message_id", msg.ID, "fires_at", firesAt)
		assigned[date] = msg
		windowIDs = append(windowIDs, msg.ID)
	}
}

// archive writes a delivered record and mirrors the decision into the ledger
func (e *Engine) archive(msg models.Message, receivedAt time.Time, date string) error {
	record := models.DeliveredMessage{
		MessageID:  msg.ID,
		Content:    msg.Content,
		Category:   msg.Category,
		Emoji:      msg.Emoji,
		ReceivedAt: receivedAt,
	}
	if err := e.store.PutMessage(record); err != nil {
		return err
	}
	if err := e.store.SetAssignment(date, msg.ID); err != nil {
		logger.Warn("Failed to record assignment in ledger", "date", date, "error", err)
	}
	return nil
}

// pick runs the selection policy against the current archive state
func (e *Engine) pick(exclude []string) models.Message {
	delivered, err := e.deliveredIDs()
	if err != nil {
		logger.Error("Failed to read archive for selection", "error", err)
	}

	var lastID string
	var lastCategory models.Category
	if all, err := e.store.GetAllMessages(); err == nil && len(all) > 0 {
		lastID = all[0].MessageID
		lastCategory = all[0].Category
	}

	return selection.Pick(e.rng, e.catalog, delivered, exclude, lastID, lastCategory)
}

func (e *Engine) deliveredIDs() ([]string, error) {
	all, err := e.store.GetAllMessages()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(all))
	for _, m := range all {
		ids = append(ids, m.MessageID)
	}
	return ids, nil
}

// randomInstantInSlot draws a uniform instant inside the slot's hour range on
// the target date
func (e *Engine) randomInstantInSlot(slot models.TimeSlot, target time.Time) time.Time {
	r := slot.Range()
	hour := r.StartHour + e.rng.Intn(r.EndHour-r.StartHour)
	minute := e.rng.Intn(60)
	return time.Date(target.Year(), target.Month(), target.Day(), hour, minute, 0, 0, target.Location())
}

func excludeIDs(triggers []models.Trigger) []string {
	ids := make([]string, 0, len(triggers))
	for _, t := range triggers {
		ids = append(ids, t.MessageID)
	}
	return ids
}
