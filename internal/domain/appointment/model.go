package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/OdairGSoares/care-idosos-sub000/internal/domain/refdata"
)

const (
	// DateLayout is the wire and storage format for appointment dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and storage format for appointment times.
	TimeLayout = "15:04"
)

// Appointment maps to the appointment table. Date and time are naive local
// wall-clock strings; the (doctor_id, location_id, date, time) tuple is
// unique at the storage layer, which is what makes a slot a slot.
type Appointment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	DoctorID   uuid.UUID `db:"doctor_id" json:"doctor_id"`
	LocationID uuid.UUID `db:"location_id" json:"location_id"`
	Date       string    `db:"date" json:"date"`
	Time       string    `db:"time" json:"time"`
	Confirmed  bool      `db:"confirmed" json:"confirmed"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Detail is the externally consumed shape: the persisted record flattened
// together with its doctor and location. Building one is a pure projection.
type Detail struct {
	ID              uuid.UUID `json:"id"`
	DoctorID        uuid.UUID `json:"doctorId"`
	DoctorName      string    `json:"doctorName"`
	DoctorSpecialty string    `json:"doctorSpecialty"`
	LocationID      uuid.UUID `json:"locationId"`
	LocationName    string    `json:"locationName"`
	LocationAddress string    `json:"locationAddress"`
	LocationCity    string    `json:"locationCity"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Confirmed       bool      `json:"confirmed"`
	CreatedAt       string    `json:"createdAt"`
}

// NewDetail projects an appointment and its joined reference data into the
// response shape.
func NewDetail(a *Appointment, doc *refdata.Doctor, loc *refdata.Location) *Detail {
	d := &Detail{
		ID:        a.ID,
		DoctorID:  a.DoctorID,
		Date:      a.Date,
		Time:      a.Time,
		Confirmed: a.Confirmed,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if doc != nil {
		d.DoctorName = doc.Name
		d.DoctorSpecialty = doc.Specialty
	}
	d.LocationID = a.LocationID
	if loc != nil {
		d.LocationName = loc.Name
		d.LocationAddress = loc.Address
		d.LocationCity = loc.City
	}
	return d
}

// validDate reports whether s is a canonical YYYY-MM-DD date. time.Parse is
// lenient about zero padding, so the round trip is compared too.
func validDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// validTime reports whether s is a canonical HH:MM clock value.
func validTime(s string) bool {
	t, err := time.Parse(TimeLayout, s)
	return err == nil && t.Format(TimeLayout) == s
}
