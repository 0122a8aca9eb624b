package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Fail 失败返回封装
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"msg": msg})
}

// Error 处理业务与绑定错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params", "fields": fields})
		return
	}

	if isBindError(err) {
		Fail(c, http.StatusBadRequest, "invalid params")
		return
	}

	if status, ok := service.ErrorMap[err]; ok {
		c.JSON(status, gin.H{"msg": err.Error()})
		return
	}

	slog.Error("unexpected error", "err", err)
	Fail(c, http.StatusInternalServerError, "server error")
}

// isBindError 判断是否为参数解析阶段产生的错误
func isBindError(err error) bool {
	var (
		ute *json.UnmarshalTypeError
		se  *json.SyntaxError
		pe  *time.ParseError
	)
	return errors.As(err, &ute) || errors.As(err, &se) || errors.As(err, &pe)
}
