package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"TaskHubGo/utils"
	"github.com/gin-gonic/gin"
)

// URLPrefix 媒体文件对外访问的路径前缀
const URLPrefix = "/media"

// FileStorage 把上传的附件保存到本地媒体目录，并解析为可访问的绝对地址
type FileStorage struct {
	Root string
}

func NewFileStorage(root string) *FileStorage {
	return &FileStorage{Root: root}
}

// SaveTaskFile 保存任务附件，返回相对媒体目录的路径
func (s *FileStorage) SaveTaskFile(file *multipart.FileHeader) (string, error) {
	relPath := filepath.Join("tasks", utils.GenerateID()+filepath.Ext(file.Filename))
	dst := filepath.Join(s.Root, relPath)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("创建媒体目录失败: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

// ResolveURL 把相对路径解析为基于当前请求的绝对地址，无附件时返回nil
func (s *FileStorage) ResolveURL(c *gin.Context, relPath string) *string {
	if relPath == "" {
		return nil
	}
	url := fmt.Sprintf("%s://%s%s/%s", utils.RequestScheme(c), c.Request.Host, URLPrefix, relPath)
	return &url
}
