package pkg

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUpload 落盘上传文件，返回存储文件名（uuid + 原扩展名）
func SaveUpload(c *gin.Context, fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(fh.Filename)
	if err := c.SaveUploadedFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
