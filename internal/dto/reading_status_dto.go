package dto

type SetReadingStatusRequest struct {
	ISBN string `json:"isbn" binding:"required"`
}

// ReadingStatusResponse reports the current-reading pointer; Reading is null
// when no pointer is set.
type ReadingStatusResponse struct {
	Reading *BookResponse `json:"reading"`
}
