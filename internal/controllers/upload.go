package controllers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"feed-api/internal/models"
	"feed-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
}

// Uploader places multipart images under Dir before the service runs.
type Uploader struct {
	Dir   string
	Files services.FileDiscarder
}

// Save stores the file sent in field. It returns nil when nothing usable was
// sent; files of other types are ignored rather than rejected.
func (u *Uploader) Save(c *fiber.Ctx, field string) (*models.StoredFile, error) {
	file, err := c.FormFile(field)
	if err != nil || file == nil {
		return nil, nil
	}
	mimeType := strings.ToLower(file.Header.Get("Content-Type"))
	if !allowedImageTypes[mimeType] {
		slog.Debug("ignoring upload with unsupported type", "field", field, "type", mimeType)
		return nil, nil
	}

	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare upload dir: %w", err)
	}
	filename := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	savePath := filepath.Join(u.Dir, filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	return &models.StoredFile{
		Path:         filepath.ToSlash(savePath),
		OriginalName: file.Filename,
		MimeType:     mimeType,
		Size:         file.Size,
	}, nil
}

// Holds reports whether path names a file inside Dir. Paths a client sends
// back must pass this before a record may point at them.
func (u *Uploader) Holds(path string) bool {
	dir, err := filepath.Abs(u.Dir)
	if err != nil {
		return false
	}
	target, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}

// Discard drops an upload no record ended up referencing.
func (u *Uploader) Discard(file *models.StoredFile) {
	if file == nil || u.Files == nil {
		return
	}
	if err := u.Files.Discard(file.Path); err != nil {
		slog.Warn("failed to discard rejected upload", "path", file.Path, "error", err)
	}
}
