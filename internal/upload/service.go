package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxFileSize = 10 * 1024 * 1024 // 10 MB
	BaseDir     = "./uploads/tour-images"
	StaticBase  = "/static/tour-images"
)

// Upload purposes namespace the stored path. Covers replace the tour's
// single URL, gallery files get appended to the existing list.
const (
	PurposeCover   = "covers"
	PurposeGallery = "gallery"
)

// AllowedMimeTypes defines which file types are accepted
var AllowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// Service saves tour images to local disk and hands back the public URL
// that gets persisted on the tour row. No DB record of its own.
type Service struct {
	baseDir    string
	staticBase string
}

func NewService(baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = BaseDir
	}
	if staticBase == "" {
		staticBase = StaticBase
	}
	return &Service{baseDir: baseDir, staticBase: staticBase}
}

// Save writes one uploaded image under <purpose>/<millis>-<uuid>_<name>
// and returns its public URL. The time prefix keeps repeated uploads of
// the same filename from colliding.
func (s *Service) Save(fileHeader *multipart.FileHeader, purpose string) (string, error) {
	if purpose != PurposeCover && purpose != PurposeGallery {
		return "", ErrInvalidPurpose
	}
	if fileHeader.Size == 0 {
		return "", ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0]

	if !AllowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	absDir := filepath.Join(s.baseDir, purpose)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s_%s",
		time.Now().UnixMilli(),
		uuid.New().String(),
		sanitizeName(fileHeader.Filename),
	)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.staticBase + "/" + purpose + "/" + filename, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
