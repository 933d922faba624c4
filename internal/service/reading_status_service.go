package service

import (
	"context"

	"bookhive/internal/catalog"
	"bookhive/internal/repository"
)

type ReadingStatusService interface {
	Set(ctx context.Context, userID int64, isbn string) error
	Clear(ctx context.Context, userID int64) error
	// Get returns the current-reading isbn, or "" when nothing is set.
	Get(ctx context.Context, userID int64) (string, error)
}

type readingStatusService struct {
	statusRepo repository.ReadingStatusRepository
	books      *catalog.Catalog
}

func NewReadingStatusService(statusRepo repository.ReadingStatusRepository, books *catalog.Catalog) ReadingStatusService {
	return &readingStatusService{
		statusRepo: statusRepo,
		books:      books,
	}
}

// Set replaces the user's current-reading pointer. The book does not have to
// be in the user's interest set.
func (s *readingStatusService) Set(ctx context.Context, userID int64, isbn string) error {
	if !s.books.Has(isbn) {
		return ErrBookNotFound
	}
	return s.statusRepo.Set(ctx, userID, isbn)
}

func (s *readingStatusService) Clear(ctx context.Context, userID int64) error {
	return s.statusRepo.Clear(ctx, userID)
}

func (s *readingStatusService) Get(ctx context.Context, userID int64) (string, error) {
	status, err := s.statusRepo.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if status == nil {
		return "", nil
	}
	return status.ISBN, nil
}
