package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const thumbnailWidth = 400

// SaveUploadedImage decodes a multipart image upload, writes it under
// uploads/<subdir>/ with a random name, and writes a resized thumbnail next
// to it. Returns the public paths ("/uploads/...") for both.
func SaveUploadedImage(fileHeader *multipart.FileHeader, subdir string) (string, string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", fmt.Errorf("decode image: %w", err)
	}

	name := uuid.NewString() + ".jpg"
	dir := filepath.Join("uploads", subdir)
	thumbDir := filepath.Join(dir, "thumb")
	if err := os.MkdirAll(thumbDir, 0755); err != nil {
		return "", "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(dir, name)); err != nil {
		return "", "", fmt.Errorf("save image: %w", err)
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, name)); err != nil {
		return "", "", fmt.Errorf("save thumbnail: %w", err)
	}

	url := "/" + filepath.ToSlash(filepath.Join(dir, name))
	thumbURL := "/" + filepath.ToSlash(filepath.Join(thumbDir, name))
	return url, thumbURL, nil
}
