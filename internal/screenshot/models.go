package screenshot

import "time"

// AnalysisResult is the outcome of analyzing one screenshot
type AnalysisResult struct {
	ExtractedText    string   `json:"extracted_text"`
	ScamProbability  float64  `json:"scam_probability"`
	RiskLevel        string   `json:"risk_level"`
	DetectedKeywords []string `json:"detected_keywords"`
	Explanation      string   `json:"explanation"`
	ImageURL         string   `json:"image_url,omitempty"`
	StoragePath      string   `json:"storage_path,omitempty"`
}

// GalleryItem is one stored high-risk screenshot in the scam gallery
type GalleryItem struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Path       string    `json:"path"`
	UploadedAt time.Time `json:"uploaded_at"`
	Size       int64     `json:"size"`
}
