package tasks

import (
	"encoding/json"
	"time"

	"carpool/models"

	"github.com/hibiken/asynq"
)

const (
	TypeTripReminder = "reminder:trip"
	TypeSlotAudit    = "audit:slots"
)

// NewTripReminderTask builds the asynq task that fires shortly before a
// trip's departure instant.
func NewTripReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeTripReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewSlotAuditTask builds the periodic slot-integrity audit task.
func NewSlotAuditTask() *asynq.Task {
	return asynq.NewTask(TypeSlotAudit, nil)
}
