package http

import (
	"net/http"

	"bookcatalog/internal/httpx"
)

// Overview lists the available endpoints for discoverability.
func Overview(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]any{
		"API Overview": "/api/overview/",
		"Authors": map[string]string{
			"List/Create":          "/api/authors/",
			"Detail/Update/Delete": "/api/authors/{id}/",
			"Author Books":         "/api/authors/{id}/books/",
		},
		"Books": map[string]string{
			"List/Create":          "/api/books/",
			"Detail/Update/Delete": "/api/books/{id}/",
			"By Genre":             "/api/books/by_genre/?genre={genre}",
			"Popular Books":        "/api/books/popular/",
			"Book Reviews":         "/api/books/{id}/reviews/",
		},
		"Reviews": map[string]string{
			"List/Create":          "/api/reviews/",
			"Detail/Update/Delete": "/api/reviews/{id}/",
			"My Reviews":           "/api/reviews/?my_reviews=true",
		},
		"User": map[string]string{
			"Profile": "/api/user/profile/",
		},
		"Authentication": map[string]string{
			"Token":    "/api/auth/token/",
			"Register": "/api/auth/register/",
		},
	}
	httpx.JSONSuccess(r, w, endpoints, nil)
}
