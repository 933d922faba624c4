package service

import (
	"context"

	"bookhive/internal/models"
	"bookhive/internal/repository"

	"github.com/stretchr/testify/mock"
)

// --- MOCK REPOSITORIES ---

type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) InsertIfAbsent(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, userID int64, isbn string) error {
	args := m.Called(ctx, userID, isbn)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *MockRatingRepository) AggregateByISBN(ctx context.Context, isbns []string) ([]repository.BookStatRow, error) {
	args := m.Called(ctx, isbns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookStatRow), args.Error(1)
}

func (m *MockRatingRepository) AggregateAll(ctx context.Context, minCount int) ([]repository.RankedRow, error) {
	args := m.Called(ctx, minCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RankedRow), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockReadingStatusRepository struct {
	mock.Mock
}

func (m *MockReadingStatusRepository) Set(ctx context.Context, userID int64, isbn string) error {
	args := m.Called(ctx, userID, isbn)
	return args.Error(0)
}

func (m *MockReadingStatusRepository) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockReadingStatusRepository) Get(ctx context.Context, userID int64) (*models.ReadingStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingStatus), args.Error(1)
}
