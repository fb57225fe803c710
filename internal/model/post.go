package model

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	OwnerID   *uint64   `gorm:"index" json:"owner_id"` // 作者注销后置空，帖子保留
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
