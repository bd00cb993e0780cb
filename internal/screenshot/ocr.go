package screenshot

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// TextExtractor pulls readable text out of an image
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// TesseractExtractor runs the tesseract binary over stdin/stdout. The binary
// path comes from config so deployments can point at a pinned install.
type TesseractExtractor struct {
	binary string
}

var _ TextExtractor = (*TesseractExtractor)(nil)

// NewTesseractExtractor creates an extractor using the given tesseract
// binary. An empty path falls back to PATH lookup.
func NewTesseractExtractor(binary string) *TesseractExtractor {
	if binary == "" {
		binary = "tesseract"
	}
	return &TesseractExtractor{binary: binary}
}

// ExtractText runs OCR over the image and returns the trimmed text
func (e *TesseractExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	cmd := exec.CommandContext(ctx, e.binary, "stdin", "stdout")
	cmd.Stdin = bytes.NewReader(image)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
