package model

import "time"

type User struct {
	ID              uint64     `gorm:"primaryKey" json:"id"`
	Username        string     `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Password        string     `gorm:"size:255;not null" json:"-"`
	LastLogin       *time.Time `json:"last_login"`
	LastRequestTime time.Time  `json:"last_request_time"`
	CreatedAt       time.Time  `json:"-"`
	UpdatedAt       time.Time  `json:"-"`
}
