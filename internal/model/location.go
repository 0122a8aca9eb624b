package model

import "time"

type Location struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:256;not null"`
	IsPublished bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}
