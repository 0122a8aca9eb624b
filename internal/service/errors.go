package service

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotPostAuthor    = errors.New("not the post author")
	ErrNotCommentAuthor = errors.New("not the comment author")
	ErrUserExists       = errors.New("username or email already taken")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidCategory  = errors.New("unknown category")
	ErrInvalidLocation  = errors.New("unknown location")
)

// ErrorMap 业务错误到 HTTP 状态码
var ErrorMap = map[error]int{
	ErrPostNotFound:     http.StatusNotFound,
	ErrCategoryNotFound: http.StatusNotFound,
	ErrCommentNotFound:  http.StatusNotFound,
	ErrUserNotFound:     http.StatusNotFound,
	ErrNotCommentAuthor: http.StatusForbidden,
	ErrUserExists:       http.StatusBadRequest,
	ErrInvalidPassword:  http.StatusUnauthorized,
	ErrInvalidCategory:  http.StatusBadRequest,
	ErrInvalidLocation:  http.StatusBadRequest,
}

// orNotFound 把 gorm 的未命中翻译成业务 sentinel，其余错误原样透传
func orNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
