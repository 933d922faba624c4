package service

import (
	"context"
	"sort"

	"bookhive/internal/cache"
	"bookhive/internal/catalog"
	"bookhive/internal/models"
	"bookhive/internal/repository"
)

// Top-rated feed defaults.
const (
	DefaultMinRatingCount = 1
	DefaultTopRatedLimit  = 10
)

type StatsService interface {
	Aggregate(ctx context.Context, isbns []string) (map[string]models.BookStat, error)
	TopRated(ctx context.Context, minCount, limit int) ([]string, error)
}

type statsService struct {
	ratingRepo repository.RatingRepository
	books      *catalog.Catalog
	feedCache  *cache.FeedCache
}

func NewStatsService(ratingRepo repository.RatingRepository, books *catalog.Catalog, feedCache *cache.FeedCache) StatsService {
	return &statsService{
		ratingRepo: ratingRepo,
		books:      books,
		feedCache:  feedCache,
	}
}

// Aggregate computes sum/count/average per requested isbn. Every requested
// isbn gets an entry; unrated books carry the zero stat so callers never
// special-case missing keys.
func (s *statsService) Aggregate(ctx context.Context, isbns []string) (map[string]models.BookStat, error) {
	return aggregateStats(ctx, s.ratingRepo, isbns)
}

// aggregateStats is shared with the rating service's interests view.
func aggregateStats(ctx context.Context, repo repository.RatingRepository, isbns []string) (map[string]models.BookStat, error) {
	stats := make(map[string]models.BookStat, len(isbns))
	for _, isbn := range isbns {
		stats[isbn] = models.BookStat{}
	}
	if len(isbns) == 0 {
		return stats, nil
	}

	rows, err := repo.AggregateByISBN(ctx, isbns)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stat := models.BookStat{Sum: row.Sum, Count: row.Count}
		if row.Count > 0 {
			stat.Average = float64(row.Sum) / float64(row.Count)
		}
		stats[row.ISBN] = stat
	}
	return stats, nil
}

// TopRated returns the globally ranked feed: catalog books with at least
// minCount ratings, ordered by average DESC, count DESC, then isbn ASC as
// the deterministic tie-break, truncated to limit.
func (s *statsService) TopRated(ctx context.Context, minCount, limit int) ([]string, error) {
	if minCount < 1 {
		minCount = DefaultMinRatingCount
	}
	if limit < 1 {
		limit = DefaultTopRatedLimit
	}

	if cached, ok := s.feedCache.GetTopRated(ctx, minCount, limit); ok {
		return cached, nil
	}

	rows, err := s.ratingRepo.AggregateAll(ctx, minCount)
	if err != nil {
		return nil, err
	}

	// Ratings can outlive a catalog refresh; only rank books we can render.
	ranked := rows[:0]
	for _, row := range rows {
		if s.books.Has(row.ISBN) {
			ranked = append(ranked, row)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Average != ranked[j].Average {
			return ranked[i].Average > ranked[j].Average
		}
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].ISBN < ranked[j].ISBN
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	isbns := make([]string, 0, len(ranked))
	for _, row := range ranked {
		isbns = append(isbns, row.ISBN)
	}

	s.feedCache.SetTopRated(ctx, minCount, limit, isbns)
	return isbns, nil
}
