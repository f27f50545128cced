package storage

import (
	"context"
	"io"
	"time"
)

// Package storage contains the blob store abstraction used for relocated
// attachment payloads. Implementations stream all I/O; nothing touches local
// disk.

// PutObjectOptions carries optional upload parameters. Size should be the
// exact byte count when known, -1 otherwise. ContentDisposition is a
// download filename hint passed through to the backend.
type PutObjectOptions struct {
	Size               int64
	ContentType        string
	ContentDisposition string
	Metadata           map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a long-lived, concurrency-safe S3-compatible blob store client.
type Storage interface {
	// Put uploads an object under the given key from the provided reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// PresignGet returns a time-limited URL for downloading the object
	// without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}
