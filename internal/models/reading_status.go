package models

import "time"

// ReadingStatus is the single "currently reading" pointer for a user. Setting
// it for a new book silently replaces the previous one; there is no history.
type ReadingStatus struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey"`
	ISBN      string    `json:"isbn" gorm:"size:20;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ReadingStatus) TableName() string {
	return "reading_status"
}
