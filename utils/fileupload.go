package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

var (
	// UploadDir is the directory where uploaded files are stored
	// Can be overridden for testing
	UploadDir = "./public/uploads"
)

// UniqueFilename builds a collision-resistant name for an uploaded file:
// a nanosecond timestamp plus the original file extension. The clock is an
// explicit argument so tests can assert on deterministic names.
func UniqueFilename(originalName string, now time.Time) string {
	ext := filepath.Ext(filepath.Base(originalName))
	return fmt.Sprintf("%d%s", now.UnixNano(), ext)
}

// SaveUploadedFile saves the uploaded file to the local filesystem under a
// unique name and returns that name. No content, size or MIME validation
// is performed; the file bytes are stored as received.
func SaveUploadedFile(fileHeader *multipart.FileHeader, uploadDir string) (filename string, err error) {
	// Create uploads directory if it doesn't exist
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename = UniqueFilename(fileHeader.Filename, time.Now())
	fullPath := filepath.Join(uploadDir, filename)

	// Open the uploaded file
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			// Log error since we're reading; not critical enough to fail the operation
			fmt.Printf("warning: failed to close source file: %v\n", closeErr)
		}
	}()

	// Create the destination file
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
	}()

	// Copy the file
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	// Return relative path (from uploadDir)
	return filename, nil
}

// GetImageURL returns the URL path for accessing an uploaded image
func GetImageURL(filename string) string {
	if filename == "" {
		return ""
	}
	return fmt.Sprintf("/uploads/%s", filename)
}
