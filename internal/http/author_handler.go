package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type AuthorHandler struct {
	repo usecase.AuthorRepository
}

func NewAuthorHandler(repo usecase.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

type authorRequest struct {
	Name      string       `json:"name" validate:"required,max=100"`
	Email     string       `json:"email" validate:"required,email"`
	Bio       string       `json:"bio"`
	BirthDate *entity.Date `json:"birth_date"`
}

type authorPatchRequest struct {
	Name      *string      `json:"name" validate:"omitempty,max=100"`
	Email     *string      `json:"email" validate:"omitempty,email"`
	Bio       *string      `json:"bio"`
	BirthDate *entity.Date `json:"birth_date"`
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	params := usecase.AuthorListParams{
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
	}
	limit, offset, page := paginate(r)
	params.Limit = limit
	params.Offset = offset

	authors, total, err := h.repo.List(r.Context(), params)
	if err != nil {
		repoError(r, w, err)
		return
	}
	if authors == nil {
		authors = []entity.Author{}
	}
	httpx.JSONSuccess(r, w, authors, listMeta(page, limit, total))
}

func (h *AuthorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author := entity.Author{
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		BirthDate: req.BirthDate,
	}
	if err := h.repo.Create(r.Context(), &author); err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, author)
}

func (h *AuthorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}
	author, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, author, nil)
}

func (h *AuthorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}

	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	author := entity.Author{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Bio:       req.Bio,
		BirthDate: req.BirthDate,
	}
	if err := h.repo.Update(r.Context(), &author); err != nil {
		repoError(r, w, err)
		return
	}

	// Re-read for the derived books_count.
	updated, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, updated, nil)
}

func (h *AuthorHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}

	author, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}

	var req authorPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if req.Name != nil {
		author.Name = *req.Name
	}
	if req.Email != nil {
		author.Email = strings.TrimSpace(*req.Email)
	}
	if req.Bio != nil {
		author.Bio = *req.Bio
	}
	if req.BirthDate != nil {
		author.BirthDate = req.BirthDate
	}

	if err := h.repo.Update(r.Context(), &author); err != nil {
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

func (h *AuthorHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// ListBooks serves the /authors/{id}/books/ sub-resource.
func (h *AuthorHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}
	if _, err := h.repo.GetByID(r.Context(), id); err != nil {
		repoError(r, w, err)
		return
	}

	books, err := h.repo.ListBooks(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	if books == nil {
		books = []entity.BookSummary{}
	}
	httpx.JSONSuccess(r, w, books, nil)
}
