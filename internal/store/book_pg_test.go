package store

import (
	"context"
	"testing"
	"time"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/usecase"

	"github.com/stretchr/testify/require"
)

func TestBookPG_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	book := createTestBook(t, db, author.ID)

	found, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	require.Equal(t, book.Title, found.Title)
	require.Equal(t, author.ID, found.AuthorID)
	require.Equal(t, author.Name, found.AuthorName)
	require.Equal(t, "19.99", found.Price)
	require.Equal(t, "2020-03-01", found.PublicationDate.String())
	require.Nil(t, found.AverageRating)
	require.Equal(t, 0, found.ReviewsCount)
}

func TestBookPG_AverageRating(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	reviews := NewReviewPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	book := createTestBook(t, db, author.ID)

	for _, rv := range []struct {
		rating int
	}{{4}, {5}} {
		user := createTestUser(t, db)
		err := reviews.Create(ctx, &entity.Review{
			BookID:  book.ID,
			UserID:  user.ID,
			Rating:  rv.rating,
			Comment: "Fixture review.",
		})
		require.NoError(t, err)
	}

	found, err := repo.GetByID(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, found.AverageRating)
	require.InDelta(t, 4.5, *found.AverageRating, 0.001)
	require.Equal(t, 2, found.ReviewsCount)
}

func TestBookPG_DuplicateISBN(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	book := createTestBook(t, db, author.ID)

	dup := book
	dup.ID = 0
	err := repo.Create(ctx, &dup)
	require.Error(t, err)

	var constraint *usecase.ConstraintError
	require.ErrorAs(t, err, &constraint)
	require.Equal(t, "isbn", constraint.Field)
}

func TestBookPG_UnknownAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	ctx := context.Background()

	book := entity.Book{
		Title:           "Orphan Book",
		AuthorID:        999999999,
		ISBN:            uniqISBN(),
		PublicationDate: entity.NewDate(2021, time.May, 5),
		Pages:           100,
		Genre:           "fiction",
		Description:     "No such author.",
		Price:           "9.99",
		IsAvailable:     true,
	}
	err := repo.Create(ctx, &book)
	require.Error(t, err)

	var reference *usecase.ReferenceError
	require.ErrorAs(t, err, &reference)
	require.Equal(t, "author", reference.Field)
}

func TestBookPG_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	book := createTestBook(t, db, author.ID)

	books, total, err := repo.List(ctx, usecase.BookListParams{AuthorID: &author.ID, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, books, 1)
	require.Equal(t, book.ID, books[0].ID)

	unavailable := false
	books, _, err = repo.List(ctx, usecase.BookListParams{AuthorID: &author.ID, IsAvailable: &unavailable, Limit: 20})
	require.NoError(t, err)
	require.Empty(t, books)
}

func TestBookPG_ListByGenre(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	book := createTestBook(t, db, author.ID)

	books, err := repo.ListByGenre(ctx, "fiction")
	require.NoError(t, err)

	var seen bool
	for _, b := range books {
		if b.ID == book.ID {
			seen = true
		}
	}
	require.True(t, seen)
}

func TestBookPG_ListPopular(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	reviews := NewReviewPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)

	rateBook := func(rating int) entity.Book {
		book := createTestBook(t, db, author.ID)
		user := createTestUser(t, db)
		err := reviews.Create(ctx, &entity.Review{
			BookID:  book.ID,
			UserID:  user.ID,
			Rating:  rating,
			Comment: "Fixture review.",
		})
		require.NoError(t, err)
		return book
	}

	// Eleven books over the threshold force the cap; one stays under it.
	for i := 0; i < 11; i++ {
		rateBook(5)
	}
	belowThreshold := rateBook(3)

	books, err := repo.ListPopular(ctx)
	require.NoError(t, err)
	require.Len(t, books, 10)

	prev := 5.1
	for _, b := range books {
		require.NotEqual(t, belowThreshold.ID, b.ID)
		require.NotNil(t, b.AverageRating)
		require.GreaterOrEqual(t, *b.AverageRating, 4.0)
		require.LessOrEqual(t, *b.AverageRating, prev)
		prev = *b.AverageRating
	}
}

func TestBookPG_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookPG(db)
	ctx := context.Background()

	author := createTestAuthor(t, db)
	book := createTestBook(t, db, author.ID)

	require.NoError(t, repo.Delete(ctx, book.ID))
	_, err := repo.GetByID(ctx, book.ID)
	require.ErrorIs(t, err, usecase.ErrNotFound)
}
