package service

import (
	"context"
	"testing"

	"bookhive/internal/catalog"
	"bookhive/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Book{
		{ISBN: "B1", Title: "First", Author: "A"},
		{ISBN: "B2", Title: "Second", Author: "Z"},
		{ISBN: "B3", Title: "Third", Author: "A"},
		{ISBN: "B4", Title: "Fourth", Author: "A"},
		{ISBN: "B5", Title: "Fifth", Author: "A"},
		{ISBN: "C1", Title: "Other", Author: "C"},
		{ISBN: "C2", Title: "Another", Author: "C"},
	})
}

func TestPickRelated_EmptyRatings(t *testing.T) {
	assert.Empty(t, pickRelated(map[string]int{}, testCatalog()))
}

func TestPickRelated_AllBelowThreshold(t *testing.T) {
	// No rating >= 4 and none == 3: no draws at all.
	ratings := map[string]int{"B1": 2, "B2": 1}
	assert.Empty(t, pickRelated(ratings, testCatalog()))
}

func TestPickRelated_HighRatingDrawsWholePool(t *testing.T) {
	// B1:5 puts author A in the affinity set with 3 draws; A's remaining
	// pool is exactly {B3, B4, B5}. B2:2 contributes nothing.
	ratings := map[string]int{"B1": 5, "B2": 2}

	picked := pickRelated(ratings, testCatalog())

	assert.ElementsMatch(t, []string{"B3", "B4", "B5"}, picked)
}

func TestPickRelated_NeverIncludesRatedBooks(t *testing.T) {
	ratings := map[string]int{"B1": 5, "B3": 4, "C1": 3}

	for i := 0; i < 20; i++ {
		for _, isbn := range pickRelated(ratings, testCatalog()) {
			_, rated := ratings[isbn]
			assert.False(t, rated, "picked already-rated book %s", isbn)
		}
	}
}

func TestPickRelated_MidTierDrawsTwo(t *testing.T) {
	// Highest rating is exactly 3: two draws per author.
	ratings := map[string]int{"B1": 3}

	for i := 0; i < 20; i++ {
		picked := pickRelated(ratings, testCatalog())
		assert.Len(t, picked, 2)
		for _, isbn := range picked {
			assert.Contains(t, []string{"B3", "B4", "B5"}, isbn)
		}
	}
}

func TestPickRelated_LowRatedBookDoesNotAddAuthor(t *testing.T) {
	// C1:2 keeps author C out even though B1:5 sets three draws.
	ratings := map[string]int{"B1": 5, "C1": 2}

	for i := 0; i < 20; i++ {
		for _, isbn := range pickRelated(ratings, testCatalog()) {
			assert.NotContains(t, []string{"C1", "C2"}, isbn)
		}
	}
}

func TestPickRelated_NoDuplicates(t *testing.T) {
	ratings := map[string]int{"B1": 5, "C1": 4}

	for i := 0; i < 20; i++ {
		picked := pickRelated(ratings, testCatalog())
		seen := make(map[string]struct{}, len(picked))
		for _, isbn := range picked {
			_, dup := seen[isbn]
			assert.False(t, dup, "duplicate %s in feed", isbn)
			seen[isbn] = struct{}{}
		}
	}
}

func TestRecommend_UserWithoutRatings(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("GetByUser", mock.Anything, int64(42)).Return([]models.Rating{}, nil)

	svc := NewRecommendService(repo, testCatalog())
	books, err := svc.Recommend(context.Background(), 42)

	require.NoError(t, err)
	assert.Empty(t, books)
	repo.AssertExpectations(t)
}

func TestRecommend_ResolvesThroughCatalog(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("GetByUser", mock.Anything, int64(7)).Return([]models.Rating{
		{UserID: 7, ISBN: "B1", Score: 5},
	}, nil)

	svc := NewRecommendService(repo, testCatalog())
	books, err := svc.Recommend(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, books, 3)
	for _, b := range books {
		assert.Equal(t, "A", b.Author)
		assert.NotEqual(t, "B1", b.ISBN)
	}
}
