package usecase

import (
	"errors"
	"io"
)

// ErrNotFound is returned when a requested record does not exist; handlers
// map it to a 404.
var ErrNotFound = errors.New("record not found")

// ErrValidation wraps input validation failures; handlers map it to a 400.
var ErrValidation = errors.New("validation failed")

// MediaStore abstracts the hosted media storage so usecases stay testable
// without network access. pkg/s3.Client satisfies it.
type MediaStore interface {
	Upload(key string, body io.Reader, contentType string) (string, error)
	Delete(key string) error
}

// Notifier publishes domain events for out-of-process delivery (mail worker).
// pkg/queue.Client satisfies it.
type Notifier interface {
	PublishInquiryEvent(event map[string]interface{}) error
}
