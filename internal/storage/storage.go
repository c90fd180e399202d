// Package storage keeps uploaded client documents in an S3-compatible bucket.
// Objects are streamed in and out; nothing touches local disk.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	// ErrDisabled is returned by the disabled store for every operation.
	ErrDisabled = errors.New("object storage is not configured")
	// ErrObjectNotFound means the key has no object in the bucket.
	ErrObjectNotFound = errors.New("object not found")
)

// PutObjectOptions describe an object being written.
// Size is -1 when unknown; the backend then uploads in parts.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
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

// Storage is the object store behind client uploads.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Stat returns ErrObjectNotFound when key does not exist.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL valid for expiry that downloads key as filename.
	PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
}

// Disabled returns a Storage that rejects every call with ErrDisabled.
// The API then records upload metadata only.
func Disabled() Storage {
	return disabled{}
}

type disabled struct{}

func (disabled) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrDisabled
}

func (disabled) Stat(context.Context, string) (ObjectInfo, error) {
	return ObjectInfo{}, ErrDisabled
}

func (disabled) Delete(context.Context, string) error {
	return ErrDisabled
}

func (disabled) PresignGet(context.Context, string, string, time.Duration) (string, error) {
	return "", ErrDisabled
}
