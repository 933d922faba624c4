package models

import "time"

// Rating is one (user, book, score) fact. At most one row exists per
// (user_id, isbn) pair; a later write replaces the score.
type Rating struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_user_isbn"`
	ISBN      string    `json:"isbn" gorm:"size:20;not null;uniqueIndex:idx_user_isbn;index"`
	Score     int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "book_interests"
}
