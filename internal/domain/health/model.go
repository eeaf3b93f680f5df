package health

import (
	"time"

	"github.com/google/uuid"
)

// RecordType names a kind of periodic measurement.
type RecordType string

const (
	TypePressure  RecordType = "pressure"
	TypeGlucose   RecordType = "glucose"
	TypeWeight    RecordType = "weight"
	TypeOxygen    RecordType = "oxygen"
	TypeHeartRate RecordType = "heart_rate"
)

func validType(t RecordType) bool {
	switch t {
	case TypePressure, TypeGlucose, TypeWeight, TypeOxygen, TypeHeartRate:
		return true
	}
	return false
}

// Record is one measurement taken at a naive local date and time.
// Value stays a string so compound readings like "120/80" survive.
type Record struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"-"`
	Type      RecordType `db:"type" json:"type"`
	Value     string     `db:"value" json:"value"`
	Unit      string     `db:"unit" json:"unit"`
	Date      string     `db:"date" json:"date"`
	Time      string     `db:"time" json:"time"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)
