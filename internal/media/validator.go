package media

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"
)

// Upload is a staged image file: the bytes plus what the client declared
// about them. It exists only between form submission and the storage write.
type Upload struct {
	Name string
	MIME string
	Data []byte
}

// Role distinguishes the error messages for the two image slots.
type Role string

const (
	RoleThumbnail Role = "thumbnail"
	RolePreview   Role = "preview"
)

const (
	MaxFileSize = 5 << 20 // 5 MiB

	RequiredWidth  = 1920
	RequiredHeight = 1080
)

var acceptedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

func (r Role) label() string {
	if r == RolePreview {
		return "Preview image"
	}
	return "Thumbnail"
}

// ValidateImage screens a staged file against the format, size and dimension
// constraints. It performs no network calls; the first violated constraint
// wins and is reported with a message naming the constraint.
func ValidateImage(u Upload, role Role) error {
	if !acceptedTypes[u.MIME] {
		return fmt.Errorf("%s must be PNG or JPEG", role.label())
	}

	if len(u.Data) > MaxFileSize {
		return fmt.Errorf("%s file size exceeds 5MB", role.label())
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(u.Data))
	if err != nil {
		return fmt.Errorf("Invalid %s image", role)
	}

	if cfg.Width != RequiredWidth || cfg.Height != RequiredHeight {
		return fmt.Errorf("%s must be %dx%d pixels", role.label(), RequiredWidth, RequiredHeight)
	}

	return nil
}

// ValidatePreviewBatch enforces the gallery cap before any upload happens:
// the existing preview count plus the newly selected count may not exceed
// max. A violation rejects the whole batch.
func ValidatePreviewBatch(existingCount, newCount, max int) error {
	if existingCount+newCount > max {
		return fmt.Errorf("Total preview images cannot exceed %d", max)
	}
	return nil
}
