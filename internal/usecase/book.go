package usecase

import (
	"context"

	"bookcatalog/internal/entity"
)

type BookListParams struct {
	Genre       string
	AuthorID    *int64
	IsAvailable *bool
	Search      string // matches title, author name, description or ISBN
	Ordering    string // title, publication_date, price, created_at
	Limit       int
	Offset      int
}

type BookRepository interface {
	List(ctx context.Context, p BookListParams) ([]entity.BookSummary, int, error)
	GetByID(ctx context.Context, id int64) (entity.Book, error)
	Create(ctx context.Context, b *entity.Book) error
	Update(ctx context.Context, b *entity.Book) error
	Delete(ctx context.Context, id int64) error
	ListByGenre(ctx context.Context, genre string) ([]entity.BookSummary, error)
	// ListPopular returns books with a mean rating of at least 4.0,
	// best-rated first, capped at 10.
	ListPopular(ctx context.Context) ([]entity.BookSummary, error)
}
