package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"Blogicum/internal/config"
	"Blogicum/internal/pkg"
	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc service.PostService
}

// PostForm 发布/编辑表单；作者与创建时间不可经表单指定
type PostForm struct {
	Title       string    `form:"title" binding:"required"`
	Text        string    `form:"text" binding:"required"`
	PubDate     time.Time `form:"pub_date" binding:"required" time_format:"2006-01-02T15:04"`
	IsPublished *bool     `form:"is_published"`
	CategoryID  *uint64   `form:"category_id"`
	LocationID  *uint64   `form:"location_id"`
}

func NewPostHandler(svc service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

func (f *PostForm) toInput(image string) *service.PostInput {
	published := true
	if f.IsPublished != nil {
		published = *f.IsPublished
	}
	return &service.PostInput{
		Title:       f.Title,
		Text:        f.Text,
		PubDate:     f.PubDate,
		Image:       image,
		IsPublished: published,
		CategoryID:  f.CategoryID,
		LocationID:  f.LocationID,
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func postIDParam(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// Index 首页列表接口
func (h *PostHandler) Index(c *gin.Context) {
	page := pageParam(c)
	list, err := h.svc.HomeFeed(page)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "page": page})
}

// Category 分类列表接口，未发布分类等同不存在
func (h *PostHandler) Category(c *gin.Context) {
	page := pageParam(c)
	category, list, err := h.svc.CategoryFeed(c.Param("slug"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "list": list, "page": page})
}

// Profile 用户主页接口
func (h *PostHandler) Profile(c *gin.Context) {
	page := pageParam(c)
	profile, list, err := h.svc.ProfileFeed(currentUserID(c), c.Param("username"), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"username":   profile.Username,
			"email":      profile.Email,
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
		},
		"list": list,
		"page": page,
	})
}

// Detail 帖子详情：作者恒可见，其余人走可见性过滤
func (h *PostHandler) Detail(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "post not found")
		return
	}

	post, comments, err := h.svc.GetPost(currentUserID(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"post":          post,
		"comments":      comments,
		"comment_count": len(comments),
	})
}

// Create 发布帖子接口
func (h *PostHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	image, err := h.saveImage(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "image upload failed")
		return
	}

	if _, err := h.svc.CreatePost(userID, form.toInput(image)); err != nil {
		response.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/profile/"+currentUsername(c))
}

// EditForm 编辑页数据；非作者直接跳回详情页
func (h *PostHandler) EditForm(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "post not found")
		return
	}

	post, _, err := h.svc.GetPost(currentUserID(c), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if post.AuthorID != currentUserID(c) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// Edit 编辑帖子：非作者软拒绝，跳回详情页
func (h *PostHandler) Edit(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "post not found")
		return
	}

	var form PostForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	image, err := h.saveImage(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "image upload failed")
		return
	}

	_, err = h.svc.UpdatePost(currentUserID(c), postID, form.toInput(image))
	if errors.Is(err, service.ErrNotPostAuthor) {
		// 越权请求不留下已落盘的图片
		if image != "" {
			_ = os.Remove(filepath.Join(config.Cfg.Server.MediaDir, image))
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
}

// Delete 删除帖子：非作者软拒绝，跳回详情页
func (h *PostHandler) Delete(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "post not found")
		return
	}

	err = h.svc.DeletePost(currentUserID(c), postID)
	if errors.Is(err, service.ErrNotPostAuthor) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+currentUsername(c))
}

// saveImage 可选的图片字段，缺省返回空文件名
func (h *PostHandler) saveImage(c *gin.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// 没带文件按无图处理
		return "", nil
	}
	return pkg.SaveUpload(c, fh, config.Cfg.Server.MediaDir)
}
