package http

import (
	"encoding/json"
	"net/http"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type BookHandler struct {
	repo    usecase.BookRepository
	reviews usecase.ReviewRepository
}

func NewBookHandler(repo usecase.BookRepository, reviews usecase.ReviewRepository) *BookHandler {
	return &BookHandler{repo: repo, reviews: reviews}
}

type bookRequest struct {
	Title           string       `json:"title" validate:"required,max=200"`
	Author          int64        `json:"author" validate:"required"`
	ISBN            string       `json:"isbn" validate:"required,isbn"`
	PublicationDate *entity.Date `json:"publication_date" validate:"required"`
	Pages           int          `json:"pages" validate:"required,gt=0"`
	Genre           string       `json:"genre" validate:"omitempty,oneof=fiction non_fiction mystery sci_fi romance biography history self_help other"`
	Description     string       `json:"description" validate:"required"`
	Price           string       `json:"price" validate:"required,price"`
	IsAvailable     *bool        `json:"is_available"`
}

type bookPatchRequest struct {
	Title           *string      `json:"title" validate:"omitempty,max=200"`
	Author          *int64       `json:"author"`
	ISBN            *string      `json:"isbn" validate:"omitempty,isbn"`
	PublicationDate *entity.Date `json:"publication_date"`
	Pages           *int         `json:"pages" validate:"omitempty,gt=0"`
	Genre           *string      `json:"genre" validate:"omitempty,oneof=fiction non_fiction mystery sci_fi romance biography history self_help other"`
	Description     *string      `json:"description"`
	Price           *string      `json:"price" validate:"omitempty,price"`
	IsAvailable     *bool        `json:"is_available"`
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	params := usecase.BookListParams{
		Genre:       r.URL.Query().Get("genre"),
		AuthorID:    queryInt64Ptr(r, "author"),
		IsAvailable: queryBoolPtr(r, "is_available"),
		Search:      r.URL.Query().Get("search"),
		Ordering:    r.URL.Query().Get("ordering"),
	}
	limit, offset, page := paginate(r)
	params.Limit = limit
	params.Offset = offset

	books, total, err := h.repo.List(r.Context(), params)
	if err != nil {
		repoError(r, w, err)
		return
	}
	if books == nil {
		books = []entity.BookSummary{}
	}
	httpx.JSONSuccess(r, w, books, listMeta(page, limit, total))
}

func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book := bookFromRequest(req)
	if err := h.repo.Create(r.Context(), &book); err != nil {
		repoError(r, w, err)
		return
	}

	// Re-read for the derived author_name and rating fields.
	created, err := h.repo.GetByID(r.Context(), book.ID)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, created)
}

func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}
	book, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, book, nil)
}

func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book := bookFromRequest(req)
	book.ID = id
	if err := h.repo.Update(r.Context(), &book); err != nil {
		repoError(r, w, err)
		return
	}

	updated, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, updated, nil)
}

func (h *BookHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}

	book, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}

	var req bookPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Author != nil {
		book.AuthorID = *req.Author
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.PublicationDate != nil {
		book.PublicationDate = *req.PublicationDate
	}
	if req.Pages != nil {
		book.Pages = *req.Pages
	}
	if req.Genre != nil {
		book.Genre = *req.Genre
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Price != nil {
		book.Price = *req.Price
	}
	if req.IsAvailable != nil {
		book.IsAvailable = *req.IsAvailable
	}

	if err := h.repo.Update(r.Context(), &book); err != nil {
		repoError(r, w, err)
		return
	}

	updated, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, updated, nil)
}

func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// ByGenre serves /books/by_genre/?genre=X. The genre parameter is required.
func (h *BookHandler) ByGenre(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")
	if genre == "" {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Genre parameter is required", nil)
		return
	}

	books, err := h.repo.ListByGenre(r.Context(), genre)
	if err != nil {
		repoError(r, w, err)
		return
	}
	if books == nil {
		books = []entity.BookSummary{}
	}
	httpx.JSONSuccess(r, w, books, nil)
}

// Popular serves /books/popular/: mean rating >= 4.0, best first, max 10.
func (h *BookHandler) Popular(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.ListPopular(r.Context())
	if err != nil {
		repoError(r, w, err)
		return
	}
	if books == nil {
		books = []entity.BookSummary{}
	}
	httpx.JSONSuccess(r, w, books, nil)
}

// ListReviews serves the /books/{id}/reviews/ sub-resource.
func (h *BookHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}
	if _, err := h.repo.GetByID(r.Context(), id); err != nil {
		repoError(r, w, err)
		return
	}

	reviews, err := h.reviews.ListByBook(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}
	httpx.JSONSuccess(r, w, reviews, nil)
}

func bookFromRequest(req bookRequest) entity.Book {
	book := entity.Book{
		Title:       req.Title,
		AuthorID:    req.Author,
		ISBN:        req.ISBN,
		Pages:       req.Pages,
		Genre:       req.Genre,
		Description: req.Description,
		Price:       req.Price,
		IsAvailable: true,
	}
	if req.PublicationDate != nil {
		book.PublicationDate = *req.PublicationDate
	}
	if book.Genre == "" {
		book.Genre = "fiction"
	}
	if req.IsAvailable != nil {
		book.IsAvailable = *req.IsAvailable
	}
	return book
}
