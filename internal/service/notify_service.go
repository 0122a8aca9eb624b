package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"Blogicum/internal/model"
	"Blogicum/internal/pkg"
)

// CommentNotifier 新评论的带外通知，尽力而为：失败只记日志，绝不影响评论写入
type CommentNotifier interface {
	NotifyNewComment(post *model.Post, comment *model.Comment, commenter *model.User)
}

type commentNotifier struct {
	smtp     pkg.SMTPConfig
	producer *pkg.KafkaProducer
	baseURL  string
}

func NewCommentNotifier(smtp pkg.SMTPConfig, producer *pkg.KafkaProducer, baseURL string) CommentNotifier {
	return &commentNotifier{smtp: smtp, producer: producer, baseURL: baseURL}
}

func (n *commentNotifier) NotifyNewComment(post *model.Post, comment *model.Comment, commenter *model.User) {
	postURL := fmt.Sprintf("%s/posts/%d/#comment-%d", n.baseURL, post.ID, comment.ID)

	if post.Author != nil && post.Author.Email != "" {
		body := pkg.CommentNotificationHTML(commenter.Username, post.Title, postURL)
		if err := pkg.SendEmail(n.smtp, post.Author.Email, "New comment", body); err != nil {
			slog.Warn("comment notification mail failed", "post_id", post.ID, "err", err)
		}
	}

	if n.producer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		ev := pkg.CommentCreatedEvent{
			PostID:    post.ID,
			CommentID: comment.ID,
			AuthorID:  post.AuthorID,
			Commenter: commenter.Username,
		}
		if err := n.producer.PublishCommentCreated(ctx, ev); err != nil {
			slog.Warn("comment event publish failed", "post_id", post.ID, "err", err)
		}
	}
}
