package store

import (
	"context"
	"testing"
	"time"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"

	"github.com/stretchr/testify/require"
)

func TestAuthorPG_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db)
	ctx := context.Background()

	birth := entity.NewDate(1965, time.July, 31)
	author := &entity.Author{
		Name:      "Integration Author",
		Email:     uniq("create") + "@example.com",
		Bio:       "Bio text.",
		BirthDate: &birth,
	}

	err := repo.Create(ctx, author)
	require.NoError(t, err)
	require.NotZero(t, author.ID)
	require.NotZero(t, author.CreatedAt)

	found, err := repo.GetByID(ctx, author.ID)
	require.NoError(t, err)
	require.Equal(t, author.Name, found.Name)
	require.Equal(t, author.Email, found.Email)
	require.NotNil(t, found.BirthDate)
	require.Equal(t, "1965-07-31", found.BirthDate.String())
	require.Equal(t, 0, found.BooksCount)
}

func TestAuthorPG_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db)
	ctx := context.Background()

	email := uniq("dup") + "@example.com"
	first := &entity.Author{Name: "First", Email: email}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.Author{Name: "Second", Email: email}
	err := repo.Create(ctx, second)
	require.Error(t, err)

	var constraint *usecase.ConstraintError
	require.ErrorAs(t, err, &constraint)
	require.Equal(t, "email", constraint.Field)
}

func TestAuthorPG_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	author.Bio = "Updated bio."
	require.NoError(t, repo.Update(ctx, &author))

	found, err := repo.GetByID(ctx, author.ID)
	require.NoError(t, err)
	require.Equal(t, "Updated bio.", found.Bio)
}

func TestAuthorPG_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	require.NoError(t, repo.Delete(ctx, author.ID))

	_, err := repo.GetByID(ctx, author.ID)
	require.ErrorIs(t, err, usecase.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, author.ID), usecase.ErrNotFound)
}

func TestAuthorPG_ListSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db)
	ctx := context.Background()

	marker := uniq("searchable")
	author := &entity.Author{Name: marker, Email: uniq("search") + "@example.com"}
	require.NoError(t, repo.Create(ctx, author))

	authors, total, err := repo.List(ctx, usecase.AuthorListParams{Search: marker, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, authors, 1)
	require.Equal(t, author.ID, authors[0].ID)
}

func TestAuthorPG_BooksCountAndListBooks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	book := createTestBook(t, db, author.ID)

	found, err := repo.GetByID(ctx, author.ID)
	require.NoError(t, err)
	require.Equal(t, 1, found.BooksCount)

	books, err := repo.ListBooks(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Equal(t, book.ID, books[0].ID)
	require.Equal(t, author.Name, books[0].AuthorName)
}
