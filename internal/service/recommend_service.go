package service

import (
	"context"
	"math/rand"
	"time"

	"bookhive/internal/catalog"
	"bookhive/internal/repository"
)

// maxDrawsPerAuthor caps how many books a single author can contribute.
const maxDrawsPerAuthor = 10

type RecommendService interface {
	Recommend(ctx context.Context, userID int64) ([]catalog.Book, error)
}

type recommendService struct {
	ratingRepo repository.RatingRepository
	books      *catalog.Catalog
}

func NewRecommendService(ratingRepo repository.RatingRepository, books *catalog.Catalog) RecommendService {
	return &recommendService{
		ratingRepo: ratingRepo,
		books:      books,
	}
}

// Recommend derives a candidate feed from the authors of the user's
// well-rated books. A user with no interests gets an empty feed.
func (s *recommendService) Recommend(ctx context.Context, userID int64) ([]catalog.Book, error) {
	ratings, err := s.ratingRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	userRatings := make(map[string]int, len(ratings))
	for _, r := range ratings {
		userRatings[r.ISBN] = r.Score
	}

	isbns := pickRelated(userRatings, s.books)

	result := make([]catalog.Book, 0, len(isbns))
	for _, isbn := range isbns {
		if book, ok := s.books.Get(isbn); ok {
			result = append(result, book)
		}
	}
	return result, nil
}

// pickRelated implements the author-affinity rule:
//
//   - authors of books rated >= 3 form the affinity set;
//   - the per-author draw size comes from the whole rating set, computed
//     once: any score >= 4 gives 3 draws, otherwise any score == 3 gives 2,
//     otherwise none;
//   - each author contributes a uniform sample without replacement from
//     their catalog pool, capped at maxDrawsPerAuthor. Books the user
//     already rated are dropped from the pool before sampling so draws are
//     never wasted on them;
//   - the combined feed is deduplicated.
//
// Sampling uses a fresh time-seeded source per call, so repeated calls can
// surface different books.
func pickRelated(userRatings map[string]int, books *catalog.Catalog) []string {
	if len(userRatings) == 0 {
		return nil
	}

	draws := 0
	for _, score := range userRatings {
		if score >= 4 {
			draws = 3
			break
		}
		if score == 3 {
			draws = 2
		}
	}
	if draws == 0 {
		return nil
	}

	affinityAuthors := make(map[string]struct{})
	for isbn, score := range userRatings {
		if score < 3 {
			continue
		}
		if book, ok := books.Get(isbn); ok && book.Author != "" {
			affinityAuthors[book.Author] = struct{}{}
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var picked []string
	seen := make(map[string]struct{})
	for author := range affinityAuthors {
		var pool []string
		for _, isbn := range books.ByAuthor(author) {
			if _, rated := userRatings[isbn]; !rated {
				pool = append(pool, isbn)
			}
		}

		n := draws
		if n > len(pool) {
			n = len(pool)
		}
		if n > maxDrawsPerAuthor {
			n = maxDrawsPerAuthor
		}
		if n == 0 {
			continue
		}

		for _, idx := range rng.Perm(len(pool))[:n] {
			isbn := pool[idx]
			if _, dup := seen[isbn]; dup {
				continue
			}
			seen[isbn] = struct{}{}
			picked = append(picked, isbn)
		}
	}
	return picked
}
