package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc service.CommentService
}

type CommentForm struct {
	Text string `form:"text" binding:"required"`
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func commentIDParam(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("cid"), 10, 64)
}

// Create 发表评论：帖子存在即可，成功后跳回详情页
func (h *CommentHandler) Create(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "post not found")
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := h.svc.CreateComment(currentUserID(c), postID, form.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d/#comment-%d", postID, comment.ID))
}

// Edit 编辑评论：非作者硬拒绝 403
func (h *CommentHandler) Edit(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "post not found")
		return
	}
	commentID, err := commentIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "comment not found")
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.svc.UpdateComment(currentUserID(c), commentID, form.Text); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
}

// Delete 删除评论：非作者硬拒绝 403
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, err := postIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "post not found")
		return
	}
	commentID, err := commentIDParam(c)
	if err != nil {
		response.Fail(c, http.StatusNotFound, "comment not found")
		return
	}

	if err := h.svc.DeleteComment(currentUserID(c), commentID); err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
}
