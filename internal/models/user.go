package models

import "time"

// User is keyed by the numeric id the reader logs in with. An account is
// created on first login and never deleted.
type User struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name,omitempty"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func (User) TableName() string {
	return "users"
}
