package model

import "time"

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"size:256;not null"`
	Text        string    `gorm:"type:text"`
	PubDate     time.Time `gorm:"not null;index:idx_pub_date,sort:desc"`
	Image       string    `gorm:"size:256"`
	IsPublished bool      `gorm:"not null;default:true"`
	AuthorID    uint64    `gorm:"not null;index"`
	CategoryID  *uint64   `gorm:"index"`
	LocationID  *uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author   *User     `gorm:"constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"constraint:OnDelete:SET NULL"`
	Location *Location `gorm:"constraint:OnDelete:SET NULL"`

	// CommentCount 由列表查询的子查询实时填充，不落库
	CommentCount int64 `gorm:"->;-:migration"`
}
