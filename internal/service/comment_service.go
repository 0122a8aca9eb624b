package service

import (
	"Blogicum/internal/model"
	"Blogicum/internal/repository/mysql"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(actorID, postID uint64, text string) (*model.Comment, error)
	UpdateComment(actorID, commentID uint64, text string) (*model.Comment, error)
	DeleteComment(actorID, commentID uint64) error
}

type commentService struct {
	repo     *mysql.CommentRepository
	postRepo *mysql.PostRepository
	userRepo *mysql.UserRepository
	notifier CommentNotifier
}

func NewCommentService(db *gorm.DB, notifier CommentNotifier) CommentService {
	return &commentService{
		repo:     &mysql.CommentRepository{DB: db},
		postRepo: &mysql.PostRepository{DB: db},
		userRepo: &mysql.UserRepository{DB: db},
		notifier: notifier,
	}
}

// CreateComment 只要求帖子存在，不复查可见性（沿用原有行为）。
// 评论人不是作者时异步通知作者，通知结果不影响本次写入。
func (s *commentService) CreateComment(actorID, postID uint64, text string) (*model.Comment, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, orNotFound(err, ErrPostNotFound)
	}
	commenter, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, orNotFound(err, ErrUserNotFound)
	}

	comment := &model.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: actorID,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	if post.AuthorID != actorID && s.notifier != nil {
		go s.notifier.NotifyNewComment(post, comment, commenter)
	}
	return comment, nil
}

func (s *commentService) UpdateComment(actorID, commentID uint64, text string) (*model.Comment, error) {
	comment, err := s.repo.FindByID(commentID)
	if err != nil {
		return nil, orNotFound(err, ErrCommentNotFound)
	}
	if comment.AuthorID != actorID {
		return nil, ErrNotCommentAuthor
	}
	if err := s.repo.UpdateText(comment, text); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteComment(actorID, commentID uint64) error {
	comment, err := s.repo.FindByID(commentID)
	if err != nil {
		return orNotFound(err, ErrCommentNotFound)
	}
	if comment.AuthorID != actorID {
		return ErrNotCommentAuthor
	}
	return s.repo.Delete(comment.ID)
}
