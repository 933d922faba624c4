package repository

import (
	"context"
	"fmt"

	"bookhive/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookStatRow is one grouped aggregation row.
type BookStatRow struct {
	ISBN  string
	Sum   int
	Count int64
}

// RankedRow is one grouped row for the top-rated feed.
type RankedRow struct {
	ISBN    string
	Average float64
	Count   int64
}

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	InsertIfAbsent(ctx context.Context, rating *models.Rating) error
	Delete(ctx context.Context, userID int64, isbn string) error
	GetByUser(ctx context.Context, userID int64) ([]models.Rating, error)
	AggregateByISBN(ctx context.Context, isbns []string) ([]BookStatRow, error)
	AggregateAll(ctx context.Context, minCount int) ([]RankedRow, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert writes the score for a (user, isbn) pair, replacing any prior score.
// The conflict target serializes concurrent writers to the same pair.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "isbn"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).
		Create(rating).Error
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

// InsertIfAbsent writes the rating only when the (user, isbn) pair has no
// row yet; an existing score is left untouched.
func (r *ratingRepository) InsertIfAbsent(ctx context.Context, rating *models.Rating) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "isbn"}},
			DoNothing: true,
		}).
		Create(rating).Error
	if err != nil {
		return fmt.Errorf("insert rating: %w", err)
	}
	return nil
}

// Delete removes the rating for a (user, isbn) pair. Deleting an absent pair
// is a no-op, not an error.
func (r *ratingRepository) Delete(ctx context.Context, userID int64, isbn string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND isbn = ?", userID, isbn).
		Delete(&models.Rating{})
	if result.Error != nil {
		return fmt.Errorf("delete rating: %w", result.Error)
	}
	return nil
}

// GetByUser returns all rating rows for a user; empty slice for an unseen id.
func (r *ratingRepository) GetByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// AggregateByISBN computes sum and count per requested isbn in a single
// grouped query. ISBNs with no ratings produce no row; the service layer
// zero-fills them.
func (r *ratingRepository) AggregateByISBN(ctx context.Context, isbns []string) ([]BookStatRow, error) {
	if len(isbns) == 0 {
		return nil, nil
	}

	var rows []BookStatRow
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("isbn, SUM(score) AS sum, COUNT(*) AS count").
		Where("isbn IN ?", isbns).
		Group("isbn").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	return rows, nil
}

// AggregateAll computes average and count for every rated book with at least
// minCount ratings, in a single grouped query.
func (r *ratingRepository) AggregateAll(ctx context.Context, minCount int) ([]RankedRow, error) {
	var rows []RankedRow
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("isbn, AVG(score) AS average, COUNT(*) AS count").
		Group("isbn").
		Having("COUNT(*) >= ?", minCount).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate all ratings: %w", err)
	}
	return rows, nil
}
