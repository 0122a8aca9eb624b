package mysql

import (
	"time"

	"Blogicum/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	DB *gorm.DB
}

// commentCountSelect 列表附带实时评论数，不做反范式缓存
const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// VisibleScope 公开可见谓词：已发布、发布时间不晚于 now、且所属分类已发布。
// INNER JOIN 使得无分类的帖子永远不可见，沿用原有行为。
func VisibleScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN categories ON categories.id = posts.category_id AND categories.is_published = ?", true).
			Where("posts.is_published = ? AND posts.pub_date <= ?", true, now)
	}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

// FindByID 不做可见性过滤，作者视角或内部使用
func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.
		Preload("Author").Preload("Category").Preload("Location").
		First(&post, id).Error
	return &post, err
}

// FindVisibleByID 非作者视角：被过滤掉的帖子与不存在同样返回 ErrRecordNotFound
func (r *PostRepository) FindVisibleByID(id uint64, now time.Time) (*model.Post, error) {
	var post model.Post
	err := r.DB.Scopes(VisibleScope(now)).
		Preload("Author").Preload("Category").Preload("Location").
		First(&post, "posts.id = ?", id).Error
	return &post, err
}

// ListVisible 首页列表：可见集合按发布时间倒序
func (r *PostRepository) ListVisible(now time.Time, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Model(&model.Post{}).
		Scopes(VisibleScope(now)).
		Select(commentCountSelect).
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) ListVisibleByCategory(categoryID uint64, now time.Time, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Model(&model.Post{}).
		Scopes(VisibleScope(now)).
		Where("posts.category_id = ?", categoryID).
		Select(commentCountSelect).
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) ListVisibleByAuthor(authorID uint64, now time.Time, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Model(&model.Post{}).
		Scopes(VisibleScope(now)).
		Where("posts.author_id = ?", authorID).
		Select(commentCountSelect).
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// ListByAuthor 主人视角：包含草稿与预发布，不走可见性过滤
func (r *PostRepository) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Model(&model.Post{}).
		Where("posts.author_id = ?", authorID).
		Select(commentCountSelect).
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) Update(post *model.Post) error {
	// 只写 posts 本表，关联对象不跟随保存
	return r.DB.Omit(clause.Associations).Save(post).Error
}

func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Post{}, id).Error
}
