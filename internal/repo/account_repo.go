package repo

import (
	"context"

	dom "MedDesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepo provides account persistence.
type AccountRepo interface {
	Create(ctx context.Context, a dom.Account) (dom.Account, error)
	GetByUsername(ctx context.Context, username string) (dom.Account, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// PGAccountRepo implements AccountRepo with Postgres.
type PGAccountRepo struct {
	db *pgxpool.Pool
}

// NewPGAccountRepo returns a new PGAccountRepo.
func NewPGAccountRepo(db *pgxpool.Pool) *PGAccountRepo {
	return &PGAccountRepo{db: db}
}

// Create inserts a new account and returns it. Unique violations on
// username/email surface as pgconn errors with the constraint name.
func (r *PGAccountRepo) Create(ctx context.Context, a dom.Account) (dom.Account, error) {
	query := `
		INSERT INTO accounts (id, username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, password_hash, is_admin, created_at`
	var out dom.Account
	err := r.db.QueryRow(ctx, query, a.ID, a.Username, a.Email, a.PasswordHash, a.IsAdmin).Scan(
		&out.ID, &out.Username, &out.Email, &out.PasswordHash, &out.IsAdmin, &out.CreatedAt,
	)
	return out, err
}

// GetByUsername returns the account by username.
func (r *PGAccountRepo) GetByUsername(ctx context.Context, username string) (dom.Account, error) {
	var a dom.Account
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, password_hash, is_admin, created_at
		 FROM accounts WHERE username = $1`,
		username,
	).Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt)
	return a, err
}

// UsernameExists reports whether an account with the username exists.
func (r *PGAccountRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)`, username,
	).Scan(&exists)
	return exists, err
}

// EmailExists reports whether an account with the email exists.
func (r *PGAccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}
