package usecase

import "bookcatalog/internal/entity"

// Actions checked by CanModifyReview.
const (
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// CanModifyReview decides whether the authenticated user may change the
// given review. Only the review's author may update or delete it.
func CanModifyReview(userID int64, review entity.Review, action string) error {
	if review.UserID == userID {
		return nil
	}
	verb := "edit"
	if action == ActionDelete {
		verb = "delete"
	}
	return &ForbiddenError{Message: "You can only " + verb + " your own reviews."}
}
