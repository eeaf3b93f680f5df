package contact

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const contactCols = `id, user_id, name, phone, relationship, created_at`

func scanContact(row pgx.Row) (*Contact, error) {
	var ct Contact
	err := row.Scan(&ct.ID, &ct.UserID, &ct.Name, &ct.Phone, &ct.Relationship, &ct.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &ct, err
}

func (r *repoPG) Create(ctx context.Context, ct *Contact) error {
	ct.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO emergency_contact (id, user_id, name, phone, relationship)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at`,
		ct.ID, ct.UserID, ct.Name, ct.Phone, ct.Relationship).Scan(&ct.CreatedAt)
}

func (r *repoPG) GetOwned(ctx context.Context, id, userID uuid.UUID) (*Contact, error) {
	return scanContact(r.pool.QueryRow(ctx,
		`SELECT `+contactCols+` FROM emergency_contact WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repoPG) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contactCols+` FROM emergency_contact WHERE user_id = $1 ORDER BY name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Contact
	for rows.Next() {
		ct, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ct)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, ct *Contact) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE emergency_contact SET name=$3, phone=$4, relationship=$5
		WHERE id = $1 AND user_id = $2`,
		ct.ID, ct.UserID, ct.Name, ct.Phone, ct.Relationship)
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
		`DELETE FROM emergency_contact WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
