package dto

import (
	"bookhive/internal/catalog"
	"bookhive/internal/models"
)

// BookResponse is a catalog record joined with community rating stats and,
// where relevant, the requesting user's own score.
type BookResponse struct {
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Year          int     `json:"year"`
	ImageURL      string  `json:"image_url"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
	YourScore     *int    `json:"your_score,omitempty"`
}

// FromCatalogBook builds a response from a catalog record and its stats.
func FromCatalogBook(b catalog.Book, stat models.BookStat) BookResponse {
	return BookResponse{
		ISBN:          b.ISBN,
		Title:         b.Title,
		Author:        b.Author,
		Year:          b.Year,
		ImageURL:      b.ImageURL,
		AverageRating: stat.Average,
		RatingCount:   stat.Count,
	}
}

// BookListResponse wraps an ordered feed of books.
type BookListResponse struct {
	Data  []BookResponse `json:"data"`
	Count int            `json:"count"`
}

func NewBookListResponse(data []BookResponse) *BookListResponse {
	if data == nil {
		data = []BookResponse{}
	}
	return &BookListResponse{Data: data, Count: len(data)}
}
