package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	apperrors "github.com/jrsteele09/go-identity-service/internal/errors"
	"github.com/jrsteele09/go-identity-service/users"
)

var _ users.Repo = (*Repo)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Repo is the Postgres-backed user store. Email uniqueness is enforced
// by the unique index; emails are normalized to lower case before every
// insert and lookup.
type Repo struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Repo, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, apperrors.Wrapf(err, "postgres.New pgxpool.New")
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, apperrors.Wrapf(err, "postgres.New schema")
	}
	return &Repo{pool: pool}, nil
}

func (r *Repo) Close() {
	r.pool.Close()
}

func (r *Repo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password, created_at, updated_at`

	created := &users.User{}
	err := r.pool.QueryRow(ctx, query, user.Name, users.NormalizeEmail(user.Email), user.PasswordHash).
		Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, apperrors.Wrapf(err, "postgres.Create")
	}
	return created, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	query := `
		SELECT id, name, email, password, created_at, updated_at
		FROM users WHERE email = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, users.NormalizeEmail(email)), "postgres.GetByEmail")
}

func (r *Repo) GetByID(ctx context.Context, id string) (*users.User, error) {
	query := `
		SELECT id, name, email, password, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "postgres.GetByID")
}

func (r *Repo) scanOne(row pgx.Row, op string) (*users.User, error) {
	user := &users.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrapf(err, op)
	}
	return user, nil
}
