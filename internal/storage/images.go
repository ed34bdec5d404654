package storage

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"

	_ "golang.org/x/image/webp"
)

// ImageInfo describes a validated character image payload.
type ImageInfo struct {
	Format      string // jpeg, png, gif, webp
	ContentType string
	Width       int
	Height      int
}

// InspectImage validates that data is a decodable image in a supported
// format and returns its metadata. Only the header is decoded.
func InspectImage(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unrecognized image data: %w", err)
	}
	contentType, ok := imageContentTypes[format]
	if !ok {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	return &ImageInfo{
		Format:      format,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

var imageContentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// CharacterImageKey builds a unique object key for an uploaded character
// image.
func CharacterImageKey(format string) string {
	ext := format
	if ext == "jpeg" {
		ext = "jpg"
	}
	return fmt.Sprintf("characters/%s.%s", uuid.NewString(), ext)
}
