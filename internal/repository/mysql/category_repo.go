package mysql

import (
	"Blogicum/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func (r *CategoryRepository) FindByID(id uint64) (*model.Category, error) {
	var category model.Category
	err := r.DB.First(&category, id).Error
	return &category, err
}

// FindPublishedBySlug 分类页入口：未发布的分类等同于不存在
func (r *CategoryRepository) FindPublishedBySlug(slug string) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("slug = ? AND is_published = ?", slug, true).First(&category).Error
	return &category, err
}
