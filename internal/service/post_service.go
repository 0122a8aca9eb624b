package service

import (
	"time"

	"Blogicum/internal/model"
	"Blogicum/internal/repository/mysql"

	"gorm.io/gorm"
)

// PostsPerPage 各列表页固定分页大小
const PostsPerPage = 10

type PostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	Image       string
	IsPublished bool
	CategoryID  *uint64
	LocationID  *uint64
}

type PostService interface {
	HomeFeed(page int) ([]model.Post, error)
	CategoryFeed(slug string, page int) (*model.Category, []model.Post, error)
	ProfileFeed(viewerID uint64, username string, page int) (*model.User, []model.Post, error)
	GetPost(viewerID, postID uint64) (*model.Post, []model.Comment, error)
	CreatePost(authorID uint64, in *PostInput) (*model.Post, error)
	UpdatePost(actorID, postID uint64, in *PostInput) (*model.Post, error)
	DeletePost(actorID, postID uint64) error
}

type postService struct {
	repo         *mysql.PostRepository
	categoryRepo *mysql.CategoryRepository
	locationRepo *mysql.LocationRepository
	commentRepo  *mysql.CommentRepository
	userRepo     *mysql.UserRepository
}

func NewPostService(db *gorm.DB) PostService {
	return &postService{
		repo:         &mysql.PostRepository{DB: db},
		categoryRepo: &mysql.CategoryRepository{DB: db},
		locationRepo: &mysql.LocationRepository{DB: db},
		commentRepo:  &mysql.CommentRepository{DB: db},
		userRepo:     &mysql.UserRepository{DB: db},
	}
}

// checkRefs 表单外键校验：分类与地点必须真实存在
func (s *postService) checkRefs(in *PostInput) error {
	if in.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*in.CategoryID); err != nil {
			return orNotFound(err, ErrInvalidCategory)
		}
	}
	if in.LocationID != nil {
		if _, err := s.locationRepo.FindByID(*in.LocationID); err != nil {
			return orNotFound(err, ErrInvalidLocation)
		}
	}
	return nil
}

// pageOffset 页码从 1 起，非法页码归一；超出末页由查询自然返回空集
func pageOffset(page int) int {
	if page <= 0 {
		page = 1
	}
	return (page - 1) * PostsPerPage
}

func (s *postService) HomeFeed(page int) ([]model.Post, error) {
	return s.repo.ListVisible(time.Now(), pageOffset(page), PostsPerPage)
}

func (s *postService) CategoryFeed(slug string, page int) (*model.Category, []model.Post, error) {
	category, err := s.categoryRepo.FindPublishedBySlug(slug)
	if err != nil {
		return nil, nil, orNotFound(err, ErrCategoryNotFound)
	}
	list, err := s.repo.ListVisibleByCategory(category.ID, time.Now(), pageOffset(page), PostsPerPage)
	if err != nil {
		return nil, nil, err
	}
	return category, list, nil
}

// ProfileFeed 主人看到全部（含草稿与预发布），其他人只看到公开可见集合
func (s *postService) ProfileFeed(viewerID uint64, username string, page int) (*model.User, []model.Post, error) {
	profile, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, nil, orNotFound(err, ErrUserNotFound)
	}

	var list []model.Post
	if viewerID == profile.ID {
		list, err = s.repo.ListByAuthor(profile.ID, pageOffset(page), PostsPerPage)
	} else {
		list, err = s.repo.ListVisibleByAuthor(profile.ID, time.Now(), pageOffset(page), PostsPerPage)
	}
	if err != nil {
		return nil, nil, err
	}
	return profile, list, nil
}

// GetPost 作者本人不受可见性过滤；其他人拿不可见帖子与拿不存在的帖子无法区分
func (s *postService) GetPost(viewerID, postID uint64) (*model.Post, []model.Comment, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, nil, orNotFound(err, ErrPostNotFound)
	}
	if post.AuthorID != viewerID {
		post, err = s.repo.FindVisibleByID(postID, time.Now())
		if err != nil {
			return nil, nil, orNotFound(err, ErrPostNotFound)
		}
	}

	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

func (s *postService) CreatePost(authorID uint64, in *PostInput) (*model.Post, error) {
	if err := s.checkRefs(in); err != nil {
		return nil, err
	}
	post := &model.Post{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     in.PubDate,
		Image:       in.Image,
		IsPublished: in.IsPublished,
		AuthorID:    authorID,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	// 回读带作者信息，便于跳转到作者主页
	return s.repo.FindByID(post.ID)
}

func (s *postService) UpdatePost(actorID, postID uint64, in *PostInput) (*model.Post, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, orNotFound(err, ErrPostNotFound)
	}
	if post.AuthorID != actorID {
		return nil, ErrNotPostAuthor
	}
	if err := s.checkRefs(in); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Text = in.Text
	post.PubDate = in.PubDate
	post.IsPublished = in.IsPublished
	post.CategoryID = in.CategoryID
	post.LocationID = in.LocationID
	if in.Image != "" {
		post.Image = in.Image
	}
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) DeletePost(actorID, postID uint64) error {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return orNotFound(err, ErrPostNotFound)
	}
	if post.AuthorID != actorID {
		return ErrNotPostAuthor
	}
	return s.repo.Delete(postID)
}
