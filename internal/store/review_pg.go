package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

var reviewOrdering = map[string]string{
	"rating":     "r.rating",
	"created_at": "r.created_at",
}

const reviewColumns = `
		r.id, r.book_id, b.title, r.user_id, u.username, r.rating, r.comment,
		r.created_at, r.updated_at`

const reviewJoins = `
		FROM reviews r
		JOIN books b ON b.id = r.book_id
		JOIN users u ON u.id = r.user_id`

func (r *ReviewPG) List(ctx context.Context, p usecase.ReviewListParams) ([]entity.Review, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if p.BookID != nil {
		clauses = append(clauses, fmt.Sprintf("r.book_id = $%d", argn))
		args = append(args, *p.BookID)
		argn++
	}
	if p.Rating != nil {
		clauses = append(clauses, fmt.Sprintf("r.rating = $%d", argn))
		args = append(args, *p.Rating)
		argn++
	}
	if p.UserID != nil {
		clauses = append(clauses, fmt.Sprintf("r.user_id = $%d", argn))
		args = append(args, *p.UserID)
		argn++
	}
	if p.Search != "" {
		clauses = append(clauses, fmt.Sprintf(
			"(b.title ILIKE $%d OR u.username ILIKE $%d OR r.comment ILIKE $%d)",
			argn, argn+1, argn+2))
		pattern := "%" + p.Search + "%"
		args = append(args, pattern, pattern, pattern)
		argn += 3
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) %s %s", reviewJoins, where)
	var total int
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT %s
		%s
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		reviewColumns, reviewJoins, where,
		orderBy(p.Ordering, reviewOrdering, "r.created_at DESC"), argn, argn+1)

	args = append(args, p.Limit, p.Offset)
	rows, err := r.db.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	reviews, err := scanReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *ReviewPG) GetByID(ctx context.Context, id int64) (entity.Review, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE r.id = $1", reviewColumns, reviewJoins)

	var rv entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.BookID, &rv.BookTitle, &rv.UserID, &rv.UserUsername,
		&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Review{}, usecase.ErrNotFound
		}
		return entity.Review{}, err
	}
	return rv, nil
}

func (r *ReviewPG) Create(ctx context.Context, rv *entity.Review) error {
	const query = `
		INSERT INTO reviews (book_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, rv.BookID, rv.UserID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *ReviewPG) Update(ctx context.Context, rv *entity.Review) error {
	const query = `
		UPDATE reviews
		SET book_id = $1, rating = $2, comment = $3, updated_at = now()
		WHERE id = $4
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query, rv.BookID, rv.Rating, rv.Comment, rv.ID).
		Scan(&rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return usecase.ErrNotFound
		}
		return mapPgError(err)
	}
	return nil
}

func (r *ReviewPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *ReviewPG) ListByBook(ctx context.Context, bookID int64) ([]entity.Review, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE r.book_id = $1 ORDER BY r.created_at DESC",
		reviewColumns, reviewJoins)

	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	return scanReviews(rows)
}

func scanReviews(rows pgx.Rows) ([]entity.Review, error) {
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		var rv entity.Review
		err := rows.Scan(&rv.ID, &rv.BookID, &rv.BookTitle, &rv.UserID,
			&rv.UserUsername, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
