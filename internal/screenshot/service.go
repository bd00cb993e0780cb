package screenshot

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/numbershield/numbershield/internal/scoring"
	"github.com/numbershield/numbershield/pkg/common"
	"github.com/numbershield/numbershield/pkg/logger"
	"github.com/numbershield/numbershield/pkg/storage"
	"go.uber.org/zap"
)

// allowedImageTypes are the upload formats OCR handles reliably
var allowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}

const (
	// highRiskUploadThreshold routes screenshots into the scam gallery prefix
	highRiskUploadThreshold = 0.80

	// DefaultGalleryLimit is used when no limit query parameter is provided
	DefaultGalleryLimit = 50
)

// Service analyzes screenshot uploads and maintains the scam gallery.
// Object storage is optional: without it analysis still works, uploads are
// skipped and the gallery reports unavailable.
type Service struct {
	extractor      TextExtractor
	store          storage.Storage
	maxUploadBytes int64
}

// NewService creates a new screenshot service. store may be nil.
func NewService(extractor TextExtractor, store storage.Storage, maxUploadMB int) *Service {
	return &Service{
		extractor:      extractor,
		store:          store,
		maxUploadBytes: int64(maxUploadMB) * 1024 * 1024,
	}
}

// Analyze runs OCR and scam analysis over an uploaded screenshot, storing a
// copy when object storage is configured.
func (s *Service) Analyze(ctx context.Context, filename, contentType string, data []byte) (*AnalysisResult, error) {
	if !storage.ValidateMimeType(contentType, allowedImageTypes) {
		return nil, common.NewBadRequestError("only JPG, PNG and WEBP images are supported", nil)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return nil, common.NewBadRequestError("file too large", nil)
	}
	if !looksLikeImage(data) {
		return nil, common.NewBadRequestError("invalid image file", nil)
	}

	text, err := s.extractor.ExtractText(ctx, data)
	if err != nil {
		logger.WithContext(ctx).Error("OCR extraction failed", zap.Error(err))
		return nil, common.NewInternalServerError("text extraction failed")
	}

	probability, keywords, explanation := AnalyzeText(text)

	result := &AnalysisResult{
		ExtractedText:    text,
		ScamProbability:  math.Round(probability*1000) / 1000,
		RiskLevel:        scoring.LevelFor(probability),
		DetectedKeywords: keywords,
		Explanation:      explanation,
	}

	if s.store != nil {
		key := storage.GenerateScreenshotKey(probability >= highRiskUploadThreshold, filename)
		upload, err := s.store.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
		if err != nil {
			// Analysis already succeeded; losing the stored copy is acceptable
			logger.WithContext(ctx).Warn("Screenshot upload failed", zap.String("key", key), zap.Error(err))
		} else {
			result.ImageURL = upload.URL
			result.StoragePath = upload.Key
		}
	}

	return result, nil
}

// Gallery lists stored high-risk screenshots, newest first
func (s *Service) Gallery(ctx context.Context, limit int) ([]GalleryItem, error) {
	if s.store == nil {
		return nil, common.NewServiceUnavailableError("object storage not configured", nil)
	}

	objects, err := s.store.List(ctx, storage.HighRiskPrefix, limit)
	if err != nil {
		logger.WithContext(ctx).Error("Failed to list scam gallery", zap.Error(err))
		return nil, common.NewServiceUnavailableError("object storage unavailable", err)
	}

	items := make([]GalleryItem, 0, len(objects))
	for _, obj := range objects {
		items = append(items, GalleryItem{
			Name:       obj.Name,
			URL:        obj.URL,
			Path:       obj.Key,
			UploadedAt: obj.LastModified,
			Size:       obj.Size,
		})
	}

	return items, nil
}

// RemoveFromGallery deletes a stored high-risk screenshot. Only gallery
// objects can be removed; analysis copies are not exposed for deletion.
func (s *Service) RemoveFromGallery(ctx context.Context, key string) error {
	if s.store == nil {
		return common.NewServiceUnavailableError("object storage not configured", nil)
	}
	if !strings.HasPrefix(key, storage.HighRiskPrefix+"/") {
		return common.NewBadRequestError("not a gallery object", nil)
	}

	if err := s.store.Delete(ctx, key); err != nil {
		logger.WithContext(ctx).Error("Failed to delete screenshot", zap.String("key", key), zap.Error(err))
		return common.NewServiceUnavailableError("object storage unavailable", err)
	}

	return nil
}

// looksLikeImage sniffs the payload so a mislabeled text file never reaches
// OCR or storage.
func looksLikeImage(data []byte) bool {
	detected := http.DetectContentType(data)
	return storage.ValidateMimeType(detected, allowedImageTypes)
}
