package model

import "time"

type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:256;not null"`
	Description string `gorm:"type:text"`
	// slug 全局唯一，不区分发布状态
	Slug        string `gorm:"uniqueIndex;size:64;not null"`
	IsPublished bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
}
