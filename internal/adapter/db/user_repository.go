package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"progresstracker/internal/core/domain"
	"progresstracker/internal/core/ports"
)

const insertUserQuery = `
INSERT INTO users (id, email, password_hash, created_at)
VALUES (:id, :email, :password_hash, :created_at);
`

const getUserByEmailQuery = `
SELECT * FROM users WHERE email = ?;
`

const getUserByIDQuery = `
SELECT * FROM users WHERE id = ?;
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) error {
	_, err := r.db.NamedExecContext(ctx, insertUserQuery, userRow{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	})
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, getUserByEmailQuery, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.getUser(ctx, getUserByIDQuery, id)
}

func (r *UserRepository) getUser(ctx context.Context, query, arg string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}, nil
}
