package service

import (
	"context"
	"errors"

	"bookhive/internal/cache"
	"bookhive/internal/catalog"
	"bookhive/internal/dto"
	"bookhive/internal/models"
	"bookhive/internal/repository"
)

var (
	ErrInvalidScore = errors.New("score must be between 1 and 5")
	ErrBookNotFound = errors.New("book not found")
)

// DefaultScore is assigned when a book is added to interests without an
// explicit rating.
const DefaultScore = 3

type RatingService interface {
	AddInterest(ctx context.Context, userID int64, isbn string) error
	SetRating(ctx context.Context, userID int64, isbn string, score int) error
	RemoveRating(ctx context.Context, userID int64, isbn string) error
	GetUserRatings(ctx context.Context, userID int64) (map[string]int, error)
	InterestsWithStats(ctx context.Context, userID int64) ([]dto.BookResponse, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	books      *catalog.Catalog
	feedCache  *cache.FeedCache
}

func NewRatingService(ratingRepo repository.RatingRepository, books *catalog.Catalog, feedCache *cache.FeedCache) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		books:      books,
		feedCache:  feedCache,
	}
}

// AddInterest marks a catalog book as an interest at the default score.
// A book that is already an interest keeps its current score.
func (s *ratingService) AddInterest(ctx context.Context, userID int64, isbn string) error {
	if !s.books.Has(isbn) {
		return ErrBookNotFound
	}

	rating := &models.Rating{UserID: userID, ISBN: isbn, Score: DefaultScore}
	if err := s.ratingRepo.InsertIfAbsent(ctx, rating); err != nil {
		return err
	}

	s.feedCache.InvalidateTopRated(ctx)
	return nil
}

// SetRating upserts the user's score for a book. Scores outside 1..5 are
// rejected before anything is persisted.
func (s *ratingService) SetRating(ctx context.Context, userID int64, isbn string, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidScore
	}
	if !s.books.Has(isbn) {
		return ErrBookNotFound
	}

	rating := &models.Rating{UserID: userID, ISBN: isbn, Score: score}
	if err := s.ratingRepo.Upsert(ctx, rating); err != nil {
		return err
	}

	s.feedCache.InvalidateTopRated(ctx)
	return nil
}

// RemoveRating drops the book from the user's interests. Removing a book
// that was never rated is a no-op.
func (s *ratingService) RemoveRating(ctx context.Context, userID int64, isbn string) error {
	if err := s.ratingRepo.Delete(ctx, userID, isbn); err != nil {
		return err
	}

	s.feedCache.InvalidateTopRated(ctx)
	return nil
}

// GetUserRatings returns the user's interest set as isbn -> score. An unseen
// user id yields an empty map.
func (s *ratingService) GetUserRatings(ctx context.Context, userID int64) (map[string]int, error) {
	ratings, err := s.ratingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int, len(ratings))
	for _, r := range ratings {
		result[r.ISBN] = r.Score
	}
	return result, nil
}

// InterestsWithStats resolves the user's interest set through the catalog and
// attaches community stats, aggregated in one grouped query.
func (s *ratingService) InterestsWithStats(ctx context.Context, userID int64) ([]dto.BookResponse, error) {
	ratings, err := s.ratingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	isbns := make([]string, 0, len(ratings))
	for _, r := range ratings {
		isbns = append(isbns, r.ISBN)
	}

	stats, err := aggregateStats(ctx, s.ratingRepo, isbns)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BookResponse, 0, len(ratings))
	for _, r := range ratings {
		book, ok := s.books.Get(r.ISBN)
		if !ok {
			// Rated before the catalog dump dropped it; skip rather than
			// render a hole.
			continue
		}
		resp := dto.FromCatalogBook(book, stats[r.ISBN])
		score := r.Score
		resp.YourScore = &score
		responses = append(responses, resp)
	}
	return responses, nil
}
