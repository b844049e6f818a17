package kvstore

import (
	"context"
	"errors"

	"github.com/windoze95/recipefinder-api/internal/s3"
)

// ObjectStore is the subset of the S3 client the S3 store needs.
type ObjectStore interface {
	GetObject(ctx context.Context, name string) ([]byte, error)
	PutObject(ctx context.Context, name string, body []byte) (string, error)
	DeleteObject(ctx context.Context, name string) error
}

// S3 stores each key as one object.
type S3 struct {
	objects ObjectStore
}

// NewS3 creates an S3 store over objects.
func NewS3(objects ObjectStore) *S3 {
	return &S3{objects: objects}
}

func (s *S3) Get(ctx context.Context, key string) (string, bool, error) {
	body, err := s.objects.GetObject(ctx, key)
	if errors.Is(err, s3.ErrObjectNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(body), true, nil
}

func (s *S3) Set(ctx context.Context, key, value string) error {
	_, err := s.objects.PutObject(ctx, key, []byte(value))
	return err
}

func (s *S3) Delete(ctx context.Context, key string) error {
	return s.objects.DeleteObject(ctx, key)
}

func (s *S3) Close() error { return nil }
