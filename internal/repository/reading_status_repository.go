package repository

import (
	"context"
	"errors"
	"fmt"

	"bookhive/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReadingStatusRepository interface {
	Set(ctx context.Context, userID int64, isbn string) error
	Clear(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*models.ReadingStatus, error)
}

type readingStatusRepository struct {
	db *gorm.DB
}

func NewReadingStatusRepository(db *gorm.DB) ReadingStatusRepository {
	return &readingStatusRepository{db: db}
}

// Set points the user's current-reading marker at isbn, replacing any
// previous pointer.
func (r *readingStatusRepository) Set(ctx context.Context, userID int64, isbn string) error {
	status := &models.ReadingStatus{UserID: userID, ISBN: isbn}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"isbn", "updated_at"}),
		}).
		Create(status).Error
	if err != nil {
		return fmt.Errorf("set reading status: %w", err)
	}
	return nil
}

// Clear removes the pointer; clearing an unset pointer is a no-op.
func (r *readingStatusRepository) Clear(ctx context.Context, userID int64) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ReadingStatus{}).Error; err != nil {
		return fmt.Errorf("clear reading status: %w", err)
	}
	return nil
}

// Get returns nil (not an error) when the user has no pointer set.
func (r *readingStatusRepository) Get(ctx context.Context, userID int64) (*models.ReadingStatus, error) {
	var status models.ReadingStatus
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reading status: %w", err)
	}
	return &status, nil
}
