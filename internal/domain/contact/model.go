package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an emergency contact owned by a user.
type Contact struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"-"`
	Name         string    `db:"name" json:"name"`
	Phone        string    `db:"phone" json:"phone"`
	Relationship string    `db:"relationship" json:"relationship"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
