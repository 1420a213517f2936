package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

type localStorage struct {
	dir string
}

// NewLocalStorage keeps uploads on disk under dir and serves them back as
// /uploads/<file>.
func NewLocalStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &localStorage{dir: dir}, nil
}

func (s *localStorage) UploadFile(file *multipart.FileHeader, allowedExts ...string) (string, error) {
	if err := checkExtension(file.Filename, allowedExts); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%d%s",
		time.Now().UnixMilli(),
		rand.Intn(1_000_000_000),
		filepath.Ext(file.Filename),
	)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

func (s *localStorage) DeleteFile(publicPath string) error {
	name := filepath.Base(publicPath)
	if name == "." || name == "/" {
		return nil
	}
	return os.Remove(filepath.Join(s.dir, name))
}
