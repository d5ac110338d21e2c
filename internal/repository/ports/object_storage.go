package ports

import (
	"context"
	"io"
)

type ObjectStorage interface {
	Open(ctx context.Context, bucket, objectName string) (io.ReadCloser, error)
}
