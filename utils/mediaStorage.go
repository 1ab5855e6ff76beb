package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"path/filepath"
	"time"

	"coursecraft/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MediaStorage wraps the object-storage bucket holding uploaded course media.
type MediaStorage struct {
	client       *minio.Client
	bucket       string
	presignedTTL time.Duration
}

// Media is the global media storage instance
var Media *MediaStorage

// ConnectMediaStorage initializes the bucket client and ensures the bucket
// exists. Called once at startup, after LoadConfig.
func ConnectMediaStorage() {
	cfg := config.AppConfig

	client, err := minio.New(cfg.MediaEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MediaAccessKey, cfg.MediaSecretKey, ""),
		Secure: cfg.MediaUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to media storage: %v", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.MediaBucket)
	if err != nil {
		log.Fatalf("Failed to check media bucket %s: %v", cfg.MediaBucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MediaBucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create media bucket %s: %v", cfg.MediaBucket, err)
		}
	}

	Media = &MediaStorage{
		client:       client,
		bucket:       cfg.MediaBucket,
		presignedTTL: time.Duration(cfg.MediaPresignedTTL) * time.Minute,
	}
}

// BuildObjectKey generates a unique object key for an uploaded file,
// preserving the extension.
func BuildObjectKey(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("media/%s%s", uuid.NewString(), ext)
}

// Upload stores an object in the media bucket.
func (m *MediaStorage) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(objectKey))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	_, err := m.client.PutObject(ctx, m.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// PresignedURL returns a short-lived GET URL for an uploaded object. This is
// the only way uploaded media leaves the bucket.
func (m *MediaStorage) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectKey, m.presignedTTL, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
