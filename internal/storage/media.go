// Package storage persists uploaded media files into a blob bucket.
//
// The bucket is addressed by URL (file://, s3://, mem://), so local disk in
// development and object storage in production share one code path.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	apperrors "github.com/Santosha2001/ecommerce/internal/errors"
)

// MediaStore saves product images and returns their public URLs.
type MediaStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewMediaStore opens the bucket at bucketURL. publicBaseURL is the prefix
// under which saved keys are reachable by clients.
func NewMediaStore(ctx context.Context, bucketURL, publicBaseURL string) (*MediaStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open media bucket")
	}

	return &MediaStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Save writes the content under a fresh key that keeps the original file
// extension, and returns the public URL of the stored object.
func (s *MediaStore) Save(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := uuid.Must(uuid.NewV7()).String() + strings.ToLower(path.Ext(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", apperrors.Wrap(err, "failed to open media writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()
		return "", apperrors.Wrap(err, "failed to write media content")
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.Wrap(err, "failed to close media writer")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket.
func (s *MediaStore) Close() error {
	return s.bucket.Close()
}
