package handler

import (
	"net/http"
	"net/url"
	"testing"

	"Blogicum/internal/model"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubCommentService struct {
	comment *model.Comment
	err     error
}

func (s *stubCommentService) CreateComment(actorID, postID uint64, text string) (*model.Comment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.comment, nil
}

func (s *stubCommentService) UpdateComment(actorID, commentID uint64, text string) (*model.Comment, error) {
	return s.comment, s.err
}

func (s *stubCommentService) DeleteComment(actorID, commentID uint64) error {
	return s.err
}

func newCommentTestRouter(svc service.CommentService, userID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(svc)
	r := gin.New()
	r.POST("/posts/:id/comment", asUser(userID, "alice"), h.Create)
	r.POST("/posts/:id/comment/:cid/edit", asUser(userID, "alice"), h.Edit)
	r.POST("/posts/:id/comment/:cid/delete", asUser(userID, "alice"), h.Delete)
	return r
}

func TestCreateCommentRedirectsWithAnchor(t *testing.T) {
	svc := &stubCommentService{comment: &model.Comment{ID: 11, PostID: 5}}
	r := newCommentTestRouter(svc, 2)

	w := doForm(r, http.MethodPost, "/posts/5/comment", url.Values{"text": {"nice"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/5/#comment-11", w.Header().Get("Location"))
}

func TestCreateCommentOnMissingPostIs404(t *testing.T) {
	svc := &stubCommentService{err: service.ErrPostNotFound}
	r := newCommentTestRouter(svc, 2)

	w := doForm(r, http.MethodPost, "/posts/999/comment", url.Values{"text": {"nice"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditCommentByNonAuthorIsForbidden(t *testing.T) {
	svc := &stubCommentService{err: service.ErrNotCommentAuthor}
	r := newCommentTestRouter(svc, 9)

	w := doForm(r, http.MethodPost, "/posts/5/comment/11/edit", url.Values{"text": {"tampered"}})

	// 评论越权是硬拒绝，与帖子的软拒绝不对称
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteCommentByNonAuthorIsForbidden(t *testing.T) {
	svc := &stubCommentService{err: service.ErrNotCommentAuthor}
	r := newCommentTestRouter(svc, 9)

	w := doForm(r, http.MethodPost, "/posts/5/comment/11/delete", url.Values{})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteCommentByAuthorRedirectsToDetail(t *testing.T) {
	svc := &stubCommentService{}
	r := newCommentTestRouter(svc, 2)

	w := doForm(r, http.MethodPost, "/posts/5/comment/11/delete", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/5", w.Header().Get("Location"))
}
