package dto

// FriendProfileResponse is the read-only view of another user: what they are
// reading now and which books they marked as interests. An unknown friend id
// yields empty fields, not an error.
type FriendProfileResponse struct {
	UserID    int64          `json:"user_id"`
	Reading   *BookResponse  `json:"reading"`
	Interests []BookResponse `json:"interests"`
}
