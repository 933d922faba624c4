package dto

// AddInterestRequest adds a catalog book to the user's interests at the
// default score.
type AddInterestRequest struct {
	ISBN string `json:"isbn" binding:"required"`
}

// SetRatingRequest adjusts the score of an interest. The score range is
// enforced at the rating store boundary, not by request binding, so the
// caller gets the store's own validation error.
type SetRatingRequest struct {
	Score int `json:"score" binding:"required"`
}
