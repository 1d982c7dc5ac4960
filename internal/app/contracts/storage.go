package contracts

import (
	"context"
	"io"
	"time"
)

type AttachmentStorage interface {
	Put(ctx context.Context, objectName, contentType string, size int64, reader io.Reader) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
