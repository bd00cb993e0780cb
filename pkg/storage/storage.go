package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// HighRiskPrefix is the key prefix for screenshots flagged as likely scams
	HighRiskPrefix = "high-risk"
	// AnalysisPrefix is the key prefix for all other analyzed screenshots
	AnalysisPrefix = "analysis"
)

// UploadResult contains the result of an upload operation
type UploadResult struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ObjectInfo describes a stored object
type ObjectInfo struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Storage interface defines the object storage operations
type Storage interface {
	// Upload uploads a file to storage
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*UploadResult, error)

	// Delete deletes a file from storage
	Delete(ctx context.Context, key string) error

	// List lists objects under a key prefix, newest first
	List(ctx context.Context, prefix string, limit int) ([]ObjectInfo, error)

	// GetURL returns the public URL for a file
	GetURL(key string) string
}

// GenerateScreenshotKey generates a unique storage key for an analyzed screenshot.
// High-risk screenshots go to a dedicated prefix so the scam gallery can list them.
func GenerateScreenshotKey(highRisk bool, filename string) string {
	ext := path.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	uniqueID := uuid.New().String()[:8]
	timestamp := time.Now().UTC().Format("20060102_150405")

	prefix := AnalysisPrefix
	if highRisk {
		prefix = HighRiskPrefix
	}

	return fmt.Sprintf("%s/%s_%s%s", prefix, timestamp, uniqueID, strings.ToLower(ext))
}

// ValidateMimeType checks if the mime type is allowed
func ValidateMimeType(mimeType string, allowedTypes []string) bool {
	if len(allowedTypes) == 0 {
		return true
	}

	mimeType = strings.ToLower(mimeType)
	for _, allowed := range allowedTypes {
		if strings.ToLower(allowed) == mimeType {
			return true
		}
		// Support wildcards like "image/*"
		if strings.HasSuffix(allowed, "/*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(mimeType, prefix) {
				return true
			}
		}
	}
	return false
}
