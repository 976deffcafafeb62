package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore holds part images. Implemented by Minio; handler tests use an
// in-memory fake.
type ObjectStore interface {
	Put(ctx context.Context, object string, r io.Reader, size int64, contentType string) (string, error)
	PresignedURL(ctx context.Context, object string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, object string) error
}

// Minio stores objects in a single bucket on a MinIO (or S3-compatible)
// server.
type Minio struct {
	client *minio.Client
	bucket string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinio connects and makes sure the bucket exists.
func NewMinio(cfg MinioConfig) (*Minio, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("minio bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("minio make bucket: %w", err)
		}
	}

	return &Minio{client: client, bucket: cfg.Bucket}, nil
}

func (m *Minio) Put(ctx context.Context, object string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, object, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("minio put %s: %w", object, err)
	}
	return fmt.Sprintf("%s/%s/%s", m.client.EndpointURL(), m.bucket, object), nil
}

func (m *Minio) Remove(ctx context.Context, object string) error {
	return m.client.RemoveObject(ctx, m.bucket, object, minio.RemoveObjectOptions{})
}

func (m *Minio) PresignedURL(ctx context.Context, object string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, object, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("minio presign %s: %w", object, err)
	}
	return u.String(), nil
}
