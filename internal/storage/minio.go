package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig holds connection settings for an S3-compatible store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// MinioStore saves images to an S3-compatible bucket.
type MinioStore struct {
	cfg    MinioConfig
	client *minio.Client
}

func NewMinioStore(cfg MinioConfig) (*MinioStore, error) {
	cl, err := minio.New(strings.TrimPrefix(cfg.Endpoint, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStore{cfg: cfg, client: cl}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (s *MinioStore) Save(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	key := objectKey(filename)
	_, err := s.client.PutObject(ctx, s.cfg.Bucket, key, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme,
		strings.TrimPrefix(s.cfg.Endpoint, "http://"), s.cfg.Bucket, key), nil
}
