package usecase

import (
	"context"

	"bookcatalog/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (entity.User, error)
	GetByUsername(ctx context.Context, username string) (entity.User, error)
}
