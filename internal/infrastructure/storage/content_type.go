package storage

import (
	"errors"

	"github.com/gabriel-vasile/mimetype"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// Accepted content types per upload purpose
var (
	HealthRecordTypes = []string{"image/jpeg", "application/pdf"}
	ImageTypes        = []string{"image/jpeg", "image/png"}
	SignatureTypes    = []string{"image/jpeg", "image/png", "application/pdf"}
)

// DetectContentType sniffs data and returns its MIME type if it is one of allowed.
func DetectContentType(data []byte, allowed []string) (string, error) {
	detected := mimetype.Detect(data)
	for _, contentType := range allowed {
		if detected.Is(contentType) {
			return contentType, nil
		}
	}
	return "", ErrUnsupportedFileType
}
