package health

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const recordCols = `id, user_id, type, value, unit, date, time, created_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Type, &rec.Value, &rec.Unit,
		&rec.Date, &rec.Time, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &rec, err
}

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	rec.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO health_record (id, user_id, type, value, unit, date, time)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at`,
		rec.ID, rec.UserID, rec.Type, rec.Value, rec.Unit, rec.Date, rec.Time).
		Scan(&rec.CreatedAt)
}

func (r *repoPG) GetOwned(ctx context.Context, id, userID uuid.UUID) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+recordCols+` FROM health_record WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID, recordType RecordType, limit, offset int) ([]*Record, int, error) {
	// $2 = '' disables the type filter.
	filter := ` WHERE user_id = $1 AND ($2 = '' OR type = $2)`

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM health_record`+filter, userID, string(recordType)).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+recordCols+` FROM health_record`+filter+
			` ORDER BY date DESC, time DESC LIMIT $3 OFFSET $4`,
		userID, string(recordType), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}

func (r *repoPG) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM health_record WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
