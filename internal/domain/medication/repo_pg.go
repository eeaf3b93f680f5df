package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const medCols = `id, user_id, name, dosage, schedule_time, reminder, created_at`

func scanMed(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.ScheduleTime, &m.Reminder, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &m, err
}

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO medication (id, user_id, name, dosage, schedule_time, reminder)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		m.ID, m.UserID, m.Name, m.Dosage, m.ScheduleTime, m.Reminder).Scan(&m.CreatedAt)
}

func (r *repoPG) GetOwned(ctx context.Context, id, userID uuid.UUID) (*Medication, error) {
	return scanMed(r.pool.QueryRow(ctx,
		`SELECT `+medCols+` FROM medication WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Medication, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+medCols+` FROM medication WHERE user_id = $1 ORDER BY schedule_time ASC, name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		m, err := scanMed(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, m *Medication) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medication SET name=$3, dosage=$4, schedule_time=$5, reminder=$6
		WHERE id = $1 AND user_id = $2`,
		m.ID, m.UserID, m.Name, m.Dosage, m.ScheduleTime, m.Reminder)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) SetReminder(ctx context.Context, id, userID uuid.UUID, reminder bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE medication SET reminder=$3 WHERE id = $1 AND user_id = $2`, id, userID, reminder)
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
		`DELETE FROM medication WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
