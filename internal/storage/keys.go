package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ThumbnailObject returns the object path for a new thumbnail upload.
func ThumbnailObject(ownerID, originalName string) string {
	return fmt.Sprintf("thumbnails/%s/%s", ownerID, generatedName(originalName))
}

// PreviewObject returns the object path for a new preview image upload.
func PreviewObject(ownerID, originalName string) string {
	return fmt.Sprintf("previews/%s/%s", ownerID, generatedName(originalName))
}

// generatedName combines a millisecond timestamp and a random token with the
// original extension. Collisions are treated as negligible, not prevented.
func generatedName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))

	token := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), token, ext)
}
