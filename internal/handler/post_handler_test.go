package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"Blogicum/internal/config"
	"Blogicum/internal/middleware"
	"Blogicum/internal/model"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostService struct {
	post     *model.Post
	comments []model.Comment
	list     []model.Post
	err      error

	gotPage   int
	gotViewer uint64
}

func (s *stubPostService) HomeFeed(page int) ([]model.Post, error) {
	s.gotPage = page
	return s.list, s.err
}

func (s *stubPostService) CategoryFeed(slug string, page int) (*model.Category, []model.Post, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return &model.Category{Slug: slug}, s.list, nil
}

func (s *stubPostService) ProfileFeed(viewerID uint64, username string, page int) (*model.User, []model.Post, error) {
	s.gotViewer = viewerID
	if s.err != nil {
		return nil, nil, s.err
	}
	return &model.User{Username: username}, s.list, nil
}

func (s *stubPostService) GetPost(viewerID, postID uint64) (*model.Post, []model.Comment, error) {
	s.gotViewer = viewerID
	return s.post, s.comments, s.err
}

func (s *stubPostService) CreatePost(authorID uint64, in *service.PostInput) (*model.Post, error) {
	return s.post, s.err
}

func (s *stubPostService) UpdatePost(actorID, postID uint64, in *service.PostInput) (*model.Post, error) {
	return s.post, s.err
}

func (s *stubPostService) DeletePost(actorID, postID uint64) error {
	return s.err
}

// asUser 测试用：模拟 LoginRequired 注入的身份
func asUser(id uint64, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, id)
		c.Set(middleware.ContextUsernameKey, username)
	}
}

func newPostTestRouter(svc service.PostService, userID uint64, username string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPostHandler(svc)
	r := gin.New()
	r.GET("/", h.Index)
	r.GET("/posts/:id", h.Detail)
	r.POST("/posts/:id/edit", asUser(userID, username), h.Edit)
	r.POST("/posts/:id/delete", asUser(userID, username), h.Delete)
	return r
}

func postForm() url.Values {
	return url.Values{
		"title":    {"a title"},
		"text":     {"a body"},
		"pub_date": {"2026-08-01T10:00"},
	}
}

func doForm(r *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEditByNonAuthorRedirectsToDetail(t *testing.T) {
	svc := &stubPostService{err: service.ErrNotPostAuthor}
	r := newPostTestRouter(svc, 2, "mallory")

	w := doForm(r, http.MethodPost, "/posts/5/edit", postForm())

	// 软拒绝：跳回详情页而不是报错
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/5", w.Header().Get("Location"))
}

func TestDeleteByNonAuthorRedirectsToDetail(t *testing.T) {
	svc := &stubPostService{err: service.ErrNotPostAuthor}
	r := newPostTestRouter(svc, 2, "mallory")

	w := doForm(r, http.MethodPost, "/posts/5/delete", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/5", w.Header().Get("Location"))
}

func TestDeleteByAuthorRedirectsToProfile(t *testing.T) {
	svc := &stubPostService{}
	r := newPostTestRouter(svc, 7, "bob")

	w := doForm(r, http.MethodPost, "/posts/5/delete", url.Values{})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile/bob", w.Header().Get("Location"))
}

func TestDetailFilteredOutIs404(t *testing.T) {
	svc := &stubPostService{err: service.ErrPostNotFound}
	r := newPostTestRouter(svc, 0, "")

	req := httptest.NewRequest(http.MethodGet, "/posts/5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditWithoutRequiredFieldsIs400(t *testing.T) {
	svc := &stubPostService{}
	r := newPostTestRouter(svc, 7, "bob")

	w := doForm(r, http.MethodPost, "/posts/5/edit", url.Values{"title": {"only title"}})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fields")
}

func TestEditWithMalformedDateIs400(t *testing.T) {
	svc := &stubPostService{}
	r := newPostTestRouter(svc, 7, "bob")

	form := postForm()
	form.Set("pub_date", "not-a-date")
	w := doForm(r, http.MethodPost, "/posts/5/edit", form)

	// 解析失败是客户端问题，且不回显原始解析错误
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid params")
	assert.NotContains(t, w.Body.String(), "parsing time")
}

func TestEditByNonAuthorLeavesNoUploadedFile(t *testing.T) {
	mediaDir := t.TempDir()
	config.Cfg = &config.Config{Server: config.ServerConfig{MediaDir: mediaDir}}

	svc := &stubPostService{err: service.ErrNotPostAuthor}
	r := newPostTestRouter(svc, 2, "mallory")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, vals := range postForm() {
		require.NoError(t, mw.WriteField(key, vals[0]))
	}
	fw, err := mw.CreateFormFile("image", "cat.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not really a png"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/posts/5/edit", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/5", w.Header().Get("Location"))

	entries, err := os.ReadDir(mediaDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "denied edit must not keep the upload on disk")
}

func TestIndexPassesPageParam(t *testing.T) {
	svc := &stubPostService{}
	r := newPostTestRouter(svc, 0, "")

	req := httptest.NewRequest(http.MethodGet, "/?page=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, svc.gotPage)
}
