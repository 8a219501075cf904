package usecase

import (
	"context"

	"bookcatalog/internal/entity"
)

type AuthorListParams struct {
	Search   string // matches name or email
	Ordering string // name, created_at; leading "-" for descending
	Limit    int
	Offset   int
}

type AuthorRepository interface {
	List(ctx context.Context, p AuthorListParams) ([]entity.Author, int, error)
	GetByID(ctx context.Context, id int64) (entity.Author, error)
	Create(ctx context.Context, a *entity.Author) error
	Update(ctx context.Context, a *entity.Author) error
	Delete(ctx context.Context, id int64) error
	// ListBooks returns the author's books, newest first.
	ListBooks(ctx context.Context, authorID int64) ([]entity.BookSummary, error)
}
