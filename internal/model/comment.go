package model

import "time"

type Comment struct {
	ID       uint64 `gorm:"primaryKey"`
	Text     string `gorm:"type:text;not null"`
	PostID   uint64 `gorm:"not null;index:idx_post_created,priority:1"`
	AuthorID uint64 `gorm:"not null;index"`
	// CreatedAt 创建时写入一次，之后不再更新
	CreatedAt time.Time `gorm:"index:idx_post_created,priority:2"`

	Post   *Post `gorm:"constraint:OnDelete:CASCADE"`
	Author *User `gorm:"constraint:OnDelete:CASCADE"`
}
