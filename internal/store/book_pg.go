package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

var bookOrdering = map[string]string{
	"title":            "b.title",
	"publication_date": "b.publication_date",
	"price":            "b.price",
	"created_at":       "b.created_at",
}

// The list projection rounds the mean rating to one decimal place; the
// detail query below leaves it unrounded.
const bookSummaryColumns = `
		b.id, b.title, a.name, b.genre, b.price::text, b.is_available,
		ROUND(AVG(r.rating)::numeric, 1)::float8, b.publication_date`

func (r *BookPG) List(ctx context.Context, p usecase.BookListParams) ([]entity.BookSummary, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if p.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("b.genre = $%d", argn))
		args = append(args, p.Genre)
		argn++
	}
	if p.AuthorID != nil {
		clauses = append(clauses, fmt.Sprintf("b.author_id = $%d", argn))
		args = append(args, *p.AuthorID)
		argn++
	}
	if p.IsAvailable != nil {
		clauses = append(clauses, fmt.Sprintf("b.is_available = $%d", argn))
		args = append(args, *p.IsAvailable)
		argn++
	}
	if p.Search != "" {
		clauses = append(clauses, fmt.Sprintf(
			"(b.title ILIKE $%d OR a.name ILIKE $%d OR b.description ILIKE $%d OR b.isbn ILIKE $%d)",
			argn, argn+1, argn+2, argn+3))
		pattern := "%" + p.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
		argn += 4
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books b JOIN authors a ON a.id = b.author_id %s", where)
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		LEFT JOIN reviews r ON r.book_id = b.id
		%s
		GROUP BY b.id, a.name
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		bookSummaryColumns, where, orderBy(p.Ordering, bookOrdering, "b.created_at DESC"), argn, argn+1)

	args = append(args, p.Limit, p.Offset)
	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	books, err := scanBookSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (entity.Book, error) {
	const query = `
		SELECT b.id, b.title, b.author_id, a.name, b.isbn, b.publication_date, b.pages,
		       b.genre, b.description, b.price::text, b.is_available,
		       AVG(r.rating)::float8, COUNT(r.id), b.created_at, b.updated_at
		FROM books b
		JOIN authors a ON a.id = b.author_id
		LEFT JOIN reviews r ON r.book_id = b.id
		WHERE b.id = $1
		GROUP BY b.id, a.name`

	var b entity.Book
	var pub time.Time
	err := r.db.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &b.ISBN, &pub, &b.Pages,
		&b.Genre, &b.Description, &b.Price, &b.IsAvailable,
		&b.AverageRating, &b.ReviewsCount, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, usecase.ErrNotFound
		}
		return entity.Book{}, err
	}
	b.PublicationDate = entity.Date{Time: pub}
	return b, nil
}

func (r *BookPG) Create(ctx context.Context, b *entity.Book) error {
	const query = `
		INSERT INTO books (title, author_id, isbn, publication_date, pages, genre, description, price, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.AuthorID, b.ISBN, b.PublicationDate.Time, b.Pages,
		b.Genre, b.Description, b.Price, b.IsAvailable,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *BookPG) Update(ctx context.Context, b *entity.Book) error {
	const query = `
		UPDATE books
		SET title = $1, author_id = $2, isbn = $3, publication_date = $4, pages = $5,
		    genre = $6, description = $7, price = $8::numeric, is_available = $9,
		    updated_at = now()
		WHERE id = $10
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.AuthorID, b.ISBN, b.PublicationDate.Time, b.Pages,
		b.Genre, b.Description, b.Price, b.IsAvailable, b.ID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrNotFound
		}
		return mapPgError(err)
	}
	return nil
}

func (r *BookPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *BookPG) ListByGenre(ctx context.Context, genre string) ([]entity.BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		LEFT JOIN reviews r ON r.book_id = b.id
		WHERE b.genre = $1
		GROUP BY b.id, a.name
		ORDER BY b.created_at DESC`, bookSummaryColumns)

	rows, err := r.db.Query(ctx, query, genre)
	if err != nil {
		return nil, err
	}
	return scanBookSummaries(rows)
}

func (r *BookPG) ListPopular(ctx context.Context) ([]entity.BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		LEFT JOIN reviews r ON r.book_id = b.id
		GROUP BY b.id, a.name
		HAVING AVG(r.rating) >= 4
		ORDER BY AVG(r.rating) DESC
		LIMIT 10`, bookSummaryColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanBookSummaries(rows)
}

func scanBookSummaries(rows pgx.Rows) ([]entity.BookSummary, error) {
	defer rows.Close()

	var books []entity.BookSummary
	for rows.Next() {
		var s entity.BookSummary
		var pub time.Time
		err := rows.Scan(&s.ID, &s.Title, &s.AuthorName, &s.Genre, &s.Price,
			&s.IsAvailable, &s.AverageRating, &pub)
		if err != nil {
			return nil, err
		}
		s.PublicationDate = entity.Date{Time: pub}
		books = append(books, s)
	}
	return books, rows.Err()
}
