package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content is empty or whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrGenerationFailed is returned when PNG encoding fails.
	ErrGenerationFailed = errors.New("failed to generate QR code")
)

// defaultSize is the image size in pixels when none is specified.
const defaultSize = 256

// Generate renders the content as a PNG QR code.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerationFailed, err)
	}
	return png, nil
}

// GenerateDataURI renders the content as a data:image/png;base64 URI,
// suitable for direct embedding in an <img> tag.
func GenerateDataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
