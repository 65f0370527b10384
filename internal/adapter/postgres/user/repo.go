// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/legends-backend/internal/adapter/postgres"
	"github.com/heartmarshall/legends-backend/internal/domain"
)

const (
	userColumns = `id, email, password, created_at`

	getUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	createUserSQL     = `INSERT INTO users (email, password) VALUES ($1, $2) RETURNING ` + userColumns
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createUserSQL, email, passwordHash))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
