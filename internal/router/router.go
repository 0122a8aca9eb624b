package router

import (
	"net/http"

	"Blogicum/internal/config"
	"Blogicum/internal/handler"
	"Blogicum/internal/middleware"
	"Blogicum/internal/pkg"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, producer *pkg.KafkaProducer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	// panic 统一落到 500，不暴露堆栈
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "server error"})
	}))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "page not found"})
	})

	cfg := config.Cfg
	smtpCfg := pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}

	notifier := service.NewCommentNotifier(smtpCfg, producer, cfg.Server.BaseURL)
	user := handler.NewUserHandler(service.NewUserService(db))
	post := handler.NewPostHandler(service.NewPostService(db))
	comment := handler.NewCommentHandler(service.NewCommentService(db, notifier))

	// 公共读接口
	r.GET("/", post.Index)
	r.GET("/category/:slug", post.Category)

	// 用户主页与资料编辑
	profileGroup := r.Group("/profile")
	{
		profileGroup.GET("/edit", middleware.LoginRequired(), user.EditProfileForm)
		profileGroup.POST("/edit", middleware.LoginRequired(), user.UpdateProfile)
		profileGroup.GET("/:username", middleware.OptionalAuth(), post.Profile)
	}

	// 帖子与评论
	postGroup := r.Group("/posts")
	{
		postGroup.GET("/:id", middleware.OptionalAuth(), post.Detail)
		postGroup.POST("/create", middleware.LoginRequired(), post.Create)
		postGroup.GET("/:id/edit", middleware.LoginRequired(), post.EditForm)
		postGroup.POST("/:id/edit", middleware.LoginRequired(), post.Edit)
		postGroup.POST("/:id/delete", middleware.LoginRequired(), post.Delete)
		postGroup.POST("/:id/comment", middleware.LoginRequired(), comment.Create)
		postGroup.POST("/:id/comment/:cid/edit", middleware.LoginRequired(), comment.Edit)
		postGroup.POST("/:id/comment/:cid/delete", middleware.LoginRequired(), comment.Delete)
	}

	// 注册登录相关接口
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", user.Register)
		authGroup.GET("/login", user.LoginPage)
		authGroup.POST("/login", user.Login)
		authGroup.POST("/logout", middleware.LoginRequired(), user.Logout)
		authGroup.POST("/refresh", user.TokenRefresh)
	}

	return r
}
