package minio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/swblog/starwars-api/internal/repository/ports"
)

var ErrObjectNotFound = errors.New("object not found")

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	// Region skips the bucket location lookup when set.
	Region string
}

func NewClient(opts Options) (*minio.Client, error) {
	return minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
}

// Storage reads seed documents out of MinIO buckets.
type Storage struct {
	client *minio.Client
}

func NewStorage(client *minio.Client) *Storage {
	return &Storage{client: client}
}

// Open returns the object body. The object is stat'ed first so a missing key
// fails here instead of on the first Read.
func (s *Storage) Open(ctx context.Context, bucket, objectName string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", bucket, objectName, err)
	}
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		switch minio.ToErrorResponse(err).Code {
		case "NoSuchKey", "NoSuchBucket":
			return nil, fmt.Errorf("%s/%s: %w", bucket, objectName, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("stat %s/%s: %w", bucket, objectName, err)
	}
	return obj, nil
}

var _ ports.ObjectStorage = (*Storage)(nil)
