package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/usecase"
)

type ReviewHandler struct {
	repo usecase.ReviewRepository
}

func NewReviewHandler(repo usecase.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{repo: repo}
}

type reviewRequest struct {
	Book    int64  `json:"book" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required"`
}

type reviewPatchRequest struct {
	Book    *int64  `json:"book"`
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment"`
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	params := usecase.ReviewListParams{
		BookID:   queryInt64Ptr(r, "book"),
		Rating:   queryIntPtr(r, "rating"),
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
	}
	if r.URL.Query().Get("my_reviews") == "true" {
		userID, ok := httpx.UserIDFrom(r)
		if !ok {
			httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
		params.UserID = &userID
	}
	limit, offset, page := paginate(r)
	params.Limit = limit
	params.Offset = offset

	reviews, total, err := h.repo.List(r.Context(), params)
	if err != nil {
		repoError(r, w, err)
		return
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}
	httpx.JSONSuccess(r, w, reviews, listMeta(page, limit, total))
}

// Create writes a review for the authenticated caller. Any client-supplied
// user field is ignored.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFrom(r)
	if !ok {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	review := entity.Review{
		BookID:  req.Book,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.repo.Create(r.Context(), &review); err != nil {
		repoError(r, w, err)
		return
	}

	// Re-read for the derived book_title and user_username.
	created, err := h.repo.GetByID(r.Context(), review.ID)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(r, w, created)
}

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return
	}
	review, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, review, nil)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	review, ok := h.ownedReview(w, r, usecase.ActionUpdate)
	if !ok {
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	review.BookID = req.Book
	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := h.repo.Update(r.Context(), &review); err != nil {
		repoError(r, w, err)
		return
	}

	updated, err := h.repo.GetByID(r.Context(), review.ID)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, updated, nil)
}

func (h *ReviewHandler) Patch(w http.ResponseWriter, r *http.Request) {
	review, ok := h.ownedReview(w, r, usecase.ActionUpdate)
	if !ok {
		return
	}

	var req reviewPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	if req.Book != nil {
		review.BookID = *req.Book
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := h.repo.Update(r.Context(), &review); err != nil {
		repoError(r, w, err)
		return
	}

	updated, err := h.repo.GetByID(r.Context(), review.ID)
	if err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccess(r, w, updated, nil)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	review, ok := h.ownedReview(w, r, usecase.ActionDelete)
	if !ok {
		return
	}
	if err := h.repo.Delete(r.Context(), review.ID); err != nil {
		repoError(r, w, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// ownedReview loads the addressed review and checks the caller may modify
// it. On failure the response has already been written.
func (h *ReviewHandler) ownedReview(w http.ResponseWriter, r *http.Request, action string) (entity.Review, bool) {
	id, err := pathID(r)
	if err != nil {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Not found.", nil)
		return entity.Review{}, false
	}
	userID, ok := httpx.UserIDFrom(r)
	if !ok {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return entity.Review{}, false
	}

	review, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		repoError(r, w, err)
		return entity.Review{}, false
	}

	if err := usecase.CanModifyReview(userID, review, action); err != nil {
		var forbidden *usecase.ForbiddenError
		if errors.As(err, &forbidden) {
			httpx.JSONError(r, w, http.StatusForbidden, "PERMISSION_DENIED", forbidden.Message, nil)
			return entity.Review{}, false
		}
		repoError(r, w, err)
		return entity.Review{}, false
	}
	return review, true
}
