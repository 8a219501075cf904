package usecase

import (
	"context"

	"bookcatalog/internal/entity"
)

type ReviewListParams struct {
	BookID   *int64
	Rating   *int
	UserID   *int64 // restricts to one user's reviews (my_reviews)
	Search   string // matches book title, username or comment
	Ordering string // rating, created_at
	Limit    int
	Offset   int
}

type ReviewRepository interface {
	List(ctx context.Context, p ReviewListParams) ([]entity.Review, int, error)
	GetByID(ctx context.Context, id int64) (entity.Review, error)
	Create(ctx context.Context, rv *entity.Review) error
	Update(ctx context.Context, rv *entity.Review) error
	Delete(ctx context.Context, id int64) error
	// ListByBook returns a book's reviews, newest first.
	ListByBook(ctx context.Context, bookID int64) ([]entity.Review, error)
}
