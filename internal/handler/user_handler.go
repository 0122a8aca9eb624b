package handler

import (
	"net/http"

	"Blogicum/internal/pkg/response"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc service.UserService
}

// RegisterReq 注册请求体
type RegisterReq struct {
	Username string `json:"username" binding:"required,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileForm 资料编辑表单，字段对齐个人资料页
type ProfileForm struct {
	Username  string `form:"username" binding:"required,max=32"`
	Email     string `form:"email" binding:"required,email"`
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register 注册接口
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.svc.Register(req.Username, req.Email, req.Password); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// Login 登录接口
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"AccessToken": token.AccessToken, "RefreshToken": token.RefreshToken})
}

// LoginPage 登录重定向落点，提示客户端走登录接口
func (h *UserHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"msg": "login required"})
}

func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(currentUserID(c)); err != nil {
		response.Fail(c, http.StatusInternalServerError, "logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "ok"})
}

// TokenRefresh 利用refresh来更新access
func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"AccessToken": token.AccessToken, "RefreshToken": token.RefreshToken})
}

// EditProfileForm 资料编辑页数据，只能看自己的
func (h *UserHandler) EditProfileForm(c *gin.Context) {
	user, err := h.svc.Profile(currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":   user.Username,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}

// UpdateProfile 资料编辑提交，成功后跳转到新用户名的主页
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var form ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.svc.UpdateProfile(currentUserID(c), &service.ProfileInput{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username)
}
