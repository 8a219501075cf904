package entity

import "time"

// Genres a book may be filed under. "fiction" is the default.
var Genres = []string{
	"fiction",
	"non_fiction",
	"mystery",
	"sci_fi",
	"romance",
	"biography",
	"history",
	"self_help",
	"other",
}

// Book is the detail representation. AuthorName, AverageRating and
// ReviewsCount are derived by the store; AverageRating is nil when the book
// has no reviews.
type Book struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	AuthorID        int64     `json:"author"`
	AuthorName      string    `json:"author_name"`
	ISBN            string    `json:"isbn"`
	PublicationDate Date      `json:"publication_date"`
	Pages           int       `json:"pages"`
	Genre           string    `json:"genre"`
	Description     string    `json:"description"`
	Price           string    `json:"price"`
	IsAvailable     bool      `json:"is_available"`
	AverageRating   *float64  `json:"average_rating"`
	ReviewsCount    int       `json:"reviews_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookSummary is the reduced list projection. Its AverageRating is rounded
// to one decimal place, unlike the detail representation.
type BookSummary struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	AuthorName      string   `json:"author_name"`
	Genre           string   `json:"genre"`
	Price           string   `json:"price"`
	IsAvailable     bool     `json:"is_available"`
	AverageRating   *float64 `json:"average_rating"`
	PublicationDate Date     `json:"publication_date"`
}
