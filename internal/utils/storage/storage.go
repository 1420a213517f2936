package storage

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"FoodRescue-Backend/domain"
)

// AllowImage is the extension allow-list for uploaded pictures.
var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// MaxUploadSize caps uploads at 10 MB, enforced before any handler body runs.
const MaxUploadSize = 10 * 1024 * 1024

type (
	// Storage persists uploaded files and returns the public path or URL that
	// clients use to fetch them back.
	Storage interface {
		UploadFile(file *multipart.FileHeader, allowedExts ...string) (string, error)
		DeleteFile(publicPath string) error
	}
)

func checkExtension(filename string, allowedExts []string) error {
	if len(allowedExts) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedExts {
		if ext == allowed {
			return nil
		}
	}
	return domain.ErrInvalidImageFormat
}
