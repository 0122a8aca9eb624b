package mysql

import (
	"Blogicum/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Preload("Author").First(&comment, id).Error
	return &comment, err
}

// ListByPost 帖子下的评论按创建时间升序
func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// UpdateText 只允许改正文，created_at 永不更新
func (r *CommentRepository) UpdateText(comment *model.Comment, text string) error {
	return r.DB.Model(comment).Update("text", text).Error
}

func (r *CommentRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
