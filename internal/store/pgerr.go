package store

import (
	"errors"

	"bookcatalog/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names from db/migrations, keyed to wire-level field names.
var uniqueConstraints = map[string]usecase.ConstraintError{
	"authors_email_key":           {Field: "email", Message: "author with this email already exists."},
	"books_isbn_key":              {Field: "isbn", Message: "book with this isbn already exists."},
	"reviews_book_id_user_id_key": {Field: "book", Message: "The fields book, user must make a unique set."},
	"users_username_key":          {Field: "username", Message: "A user with that username already exists."},
}

var foreignKeyConstraints = map[string]string{
	"books_author_id_fkey": "author",
	"reviews_book_id_fkey": "book",
	"reviews_user_id_fkey": "user",
}

// mapPgError translates constraint violations into usecase errors so the
// handlers can answer with field-level validation messages.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		if ce, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return &usecase.ConstraintError{Field: ce.Field, Message: ce.Message}
		}
	case "23503": // foreign_key_violation
		if field, ok := foreignKeyConstraints[pgErr.ConstraintName]; ok {
			return &usecase.ReferenceError{Field: field}
		}
	}
	return err
}
