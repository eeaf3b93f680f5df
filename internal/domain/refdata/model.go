package refdata

import (
	"github.com/google/uuid"
)

// Doctor maps to the doctor table. Reference data: the service only reads
// it, rows enter through seed migrations.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Specialty string    `db:"specialty" json:"specialty"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
}

// Location maps to the location table. Reference data, read-only.
type Location struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Name    string    `db:"name" json:"name"`
	Address string    `db:"address" json:"address"`
	City    string    `db:"city" json:"city"`
}
