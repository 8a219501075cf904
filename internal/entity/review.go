package entity

import "time"

// Review of a book by a user. At most one review per (book, user) pair.
type Review struct {
	ID           int64     `json:"id"`
	BookID       int64     `json:"book"`
	BookTitle    string    `json:"book_title"`
	UserID       int64     `json:"user"`
	UserUsername string    `json:"user_username"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
