package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const userCols = `id, first_name, last_name, email, phone, password_hash, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &u, err
}

func (r *repoPG) Create(ctx context.Context, u *User) error {
	u.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO app_user (id, first_name, last_name, email, phone, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.PasswordHash).Scan(&u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM app_user WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userCols+` FROM app_user WHERE lower(email) = lower($1)`, email))
}
