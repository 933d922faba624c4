package service

import (
	"context"
	"testing"

	"bookhive/internal/models"
	"bookhive/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAggregate_ComputesAverage(t *testing.T) {
	// Two ratings (4 and 2) for b1.
	repo := new(MockRatingRepository)
	repo.On("AggregateByISBN", mock.Anything, []string{"b1"}).Return([]repository.BookStatRow{
		{ISBN: "b1", Sum: 6, Count: 2},
	}, nil)

	svc := NewStatsService(repo, testCatalog(), nil)
	stats, err := svc.Aggregate(context.Background(), []string{"b1"})

	require.NoError(t, err)
	assert.Equal(t, models.BookStat{Sum: 6, Count: 2, Average: 3.0}, stats["b1"])
}

func TestAggregate_ZeroFillsUnratedBooks(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("AggregateByISBN", mock.Anything, []string{"b9"}).Return([]repository.BookStatRow{}, nil)

	svc := NewStatsService(repo, testCatalog(), nil)
	stats, err := svc.Aggregate(context.Background(), []string{"b9"})

	require.NoError(t, err)
	stat, ok := stats["b9"]
	require.True(t, ok, "unrated book must still have an entry")
	assert.Equal(t, models.BookStat{}, stat)
}

func TestAggregate_EmptyInput(t *testing.T) {
	repo := new(MockRatingRepository)

	svc := NewStatsService(repo, testCatalog(), nil)
	stats, err := svc.Aggregate(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, stats)
	repo.AssertNotCalled(t, "AggregateByISBN")
}

func TestTopRated_SortsByAverageThenCountThenISBN(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("AggregateAll", mock.Anything, 1).Return([]repository.RankedRow{
		{ISBN: "B1", Average: 4.0, Count: 2},
		{ISBN: "B3", Average: 5.0, Count: 1},
		{ISBN: "B4", Average: 4.0, Count: 5},
		{ISBN: "B5", Average: 4.0, Count: 2}, // ties with B1 on both keys
	}, nil)

	svc := NewStatsService(repo, testCatalog(), nil)
	isbns, err := svc.TopRated(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"B3", "B4", "B1", "B5"}, isbns)
}

func TestTopRated_TruncatesToLimit(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("AggregateAll", mock.Anything, 1).Return([]repository.RankedRow{
		{ISBN: "B1", Average: 5.0, Count: 3},
		{ISBN: "B2", Average: 4.0, Count: 3},
		{ISBN: "B3", Average: 3.0, Count: 3},
	}, nil)

	svc := NewStatsService(repo, testCatalog(), nil)
	isbns, err := svc.TopRated(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "B2"}, isbns)
}

func TestTopRated_DropsBooksMissingFromCatalog(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("AggregateAll", mock.Anything, 1).Return([]repository.RankedRow{
		{ISBN: "GONE", Average: 5.0, Count: 9},
		{ISBN: "B1", Average: 4.0, Count: 1},
	}, nil)

	svc := NewStatsService(repo, testCatalog(), nil)
	isbns, err := svc.TopRated(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, isbns)
}

func TestTopRated_EmptyWhenNothingQualifies(t *testing.T) {
	repo := new(MockRatingRepository)
	repo.On("AggregateAll", mock.Anything, 5).Return([]repository.RankedRow{}, nil)

	svc := NewStatsService(repo, testCatalog(), nil)
	isbns, err := svc.TopRated(context.Background(), 5, 10)

	require.NoError(t, err)
	assert.Empty(t, isbns)
}
