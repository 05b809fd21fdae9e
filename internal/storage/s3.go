package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// s3API is the slice of the minio client the backend depends on.
type s3API interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// S3 stores files in an S3-compatible bucket through the minio client.
type S3 struct {
	client    s3API
	bucket    string
	publicURL string
}

// S3Options configure the S3 backend.
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base URL objects are served from. Falls back to
	// <scheme>://<endpoint>/<bucket>.
	PublicURL string
}

// NewS3 connects to the S3-compatible endpoint.
func NewS3(opts S3Options) (*S3, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	publicURL := strings.TrimSuffix(opts.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, opts.Endpoint, opts.Bucket)
	}

	return &S3{client: client, bucket: opts.Bucket, publicURL: publicURL}, nil
}

// Save uploads the object.
func (s *S3) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Open fetches the object for reading.
func (s *S3) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
}

// Delete removes the object.
func (s *S3) Delete(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// URL resolves a key against the public base URL.
func (s *S3) URL(key string) string {
	return s.publicURL + "/" + strings.TrimPrefix(key, "/")
}
