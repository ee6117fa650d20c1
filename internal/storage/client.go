package storage

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
)

// Client uploads binary objects to the app's Cloud Storage bucket and
// resolves their public URLs. Uploads are all-or-nothing per object.
type Client struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

// NewClient resolves the content bucket through the Firebase Admin app.
func NewClient(ctx context.Context, app *firebase.App, bucketName string) (*Client, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET is required")
	}

	s, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}

	bucket, err := s.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bucket %s: %w", bucketName, err)
	}

	return &Client{bucket: bucket, bucketName: bucketName}, nil
}

// Upload writes data under objectPath, overwriting any existing object, and
// returns the public URL of the written object.
func (c *Client) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	w := c.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object %s: %w", objectPath, err)
	}

	return c.PublicURL(objectPath), nil
}

// PublicURL returns the canonical public URL for an object in the bucket.
func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectPath)
}
