package store

import (
	"context"
	"errors"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

const userColumns = "id, username, email, password_hash, first_name, last_name, date_joined"

func (r *UserPG) Create(ctx context.Context, u *entity.User) error {
	const query = `
		INSERT INTO users (username, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, date_joined`

	err := r.db.QueryRow(ctx, query, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName).
		Scan(&u.ID, &u.DateJoined)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *UserPG) GetByID(ctx context.Context, id int64) (entity.User, error) {
	return r.get(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserPG) GetByUsername(ctx context.Context, username string) (entity.User, error) {
	return r.get(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
}

func (r *UserPG) get(ctx context.Context, query string, arg any) (entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.DateJoined,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, usecase.ErrNotFound
		}
		return entity.User{}, err
	}
	return u, nil
}
