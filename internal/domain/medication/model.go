package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication is one scheduled dose owned by a user. ScheduleTime is a
// naive HH:MM wall-clock string.
type Medication struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"-"`
	Name         string    `db:"name" json:"name"`
	Dosage       string    `db:"dosage" json:"dosage"`
	ScheduleTime string    `db:"schedule_time" json:"scheduleTime"`
	Reminder     bool      `db:"reminder" json:"reminder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

const timeLayout = "15:04"
