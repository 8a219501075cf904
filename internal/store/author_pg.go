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

type AuthorPG struct {
	db *pgxpool.Pool
}

func NewAuthorPG(db *pgxpool.Pool) *AuthorPG {
	return &AuthorPG{db: db}
}

var authorOrdering = map[string]string{
	"name":       "a.name",
	"created_at": "a.created_at",
}

func (r *AuthorPG) List(ctx context.Context, p usecase.AuthorListParams) ([]entity.Author, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if p.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(a.name ILIKE $%d OR a.email ILIKE $%d)", argn, argn+1))
		pattern := "%" + p.Search + "%"
		args = append(args, pattern, pattern)
		argn += 2
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM authors a %s", where)
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT a.id, a.name, a.email, a.bio, a.birth_date, COUNT(b.id), a.created_at, a.updated_at
		FROM authors a
		LEFT JOIN books b ON b.author_id = a.id
		%s
		GROUP BY a.id
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		where, orderBy(p.Ordering, authorOrdering, "a.name ASC"), argn, argn+1)

	args = append(args, p.Limit, p.Offset)
	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var authors []entity.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, 0, err
		}
		authors = append(authors, a)
	}
	return authors, total, rows.Err()
}

func (r *AuthorPG) GetByID(ctx context.Context, id int64) (entity.Author, error) {
	const query = `
		SELECT a.id, a.name, a.email, a.bio, a.birth_date, COUNT(b.id), a.created_at, a.updated_at
		FROM authors a
		LEFT JOIN books b ON b.author_id = a.id
		WHERE a.id = $1
		GROUP BY a.id`

	a, err := scanAuthor(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, usecase.ErrNotFound
		}
		return entity.Author{}, err
	}
	return a, nil
}

func (r *AuthorPG) Create(ctx context.Context, a *entity.Author) error {
	const query = `
		INSERT INTO authors (name, email, bio, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, a.Name, a.Email, a.Bio, birthDateArg(a)).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *AuthorPG) Update(ctx context.Context, a *entity.Author) error {
	const query = `
		UPDATE authors
		SET name = $1, email = $2, bio = $3, birth_date = $4, updated_at = now()
		WHERE id = $5
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query, a.Name, a.Email, a.Bio, birthDateArg(a), a.ID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrNotFound
		}
		return mapPgError(err)
	}
	return nil
}

func (r *AuthorPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM authors WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *AuthorPG) ListBooks(ctx context.Context, authorID int64) ([]entity.BookSummary, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books b
		JOIN authors a ON a.id = b.author_id
		LEFT JOIN reviews r ON r.book_id = b.id
		WHERE b.author_id = $1
		GROUP BY b.id, a.name
		ORDER BY b.created_at DESC`, bookSummaryColumns)

	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	return scanBookSummaries(rows)
}

func scanAuthor(row pgx.Row) (entity.Author, error) {
	var a entity.Author
	var birth *time.Time
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Bio, &birth, &a.BooksCount, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return entity.Author{}, err
	}
	if birth != nil {
		d := entity.Date{Time: *birth}
		a.BirthDate = &d
	}
	return a, nil
}

func birthDateArg(a *entity.Author) *time.Time {
	if a.BirthDate == nil {
		return nil
	}
	t := a.BirthDate.Time
	return &t
}
