package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a violated unique
// constraint. The slot index makes the second of two racing writes fail
// with it.
const uniqueViolation = "23505"

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const apptCols = `id, user_id, doctor_id, location_id, date, time, confirmed, created_at, updated_at`

func scanAppt(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.UserID, &a.DoctorID, &a.LocationID,
		&a.Date, &a.Time, &a.Confirmed, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &a, err
}

func slotConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrSlotTaken
	}
	return err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointment (id, user_id, doctor_id, location_id, date, time, confirmed)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		a.ID, a.UserID, a.DoctorID, a.LocationID, a.Date, a.Time, a.Confirmed).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return slotConflict(err)
	}
	return nil
}

func (r *repoPG) GetOwned(ctx context.Context, id, userID uuid.UUID) (*Appointment, error) {
	return scanAppt(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+apptCols+` FROM appointment WHERE user_id = $1 ORDER BY date ASC, time ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppt(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) UpdateSchedule(ctx context.Context, a *Appointment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointment
		SET doctor_id=$3, location_id=$4, date=$5, time=$6, updated_at=NOW()
		WHERE id = $1 AND user_id = $2`,
		a.ID, a.UserID, a.DoctorID, a.LocationID, a.Date, a.Time)
	if err != nil {
		return slotConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) SetConfirmed(ctx context.Context, id, userID uuid.UUID, confirmed bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointment SET confirmed=$3, updated_at=NOW()
		WHERE id = $1 AND user_id = $2`, id, userID, confirmed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM appointment WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) SlotTaken(ctx context.Context, doctorID, locationID uuid.UUID, date, tm string) (bool, error) {
	var taken bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM appointment
			WHERE doctor_id = $1 AND location_id = $2 AND date = $3 AND time = $4
		)`, doctorID, locationID, date, tm).Scan(&taken)
	return taken, err
}
