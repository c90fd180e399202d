package service

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoFile is returned when a download is requested for a metadata-only upload.
	ErrNoFile = errors.New("upload has no stored file")
)

var (
	ErrClientNotFound       = fmt.Errorf("corporate client %w", ErrNotFound)
	ErrDocumentTypeNotFound = fmt.Errorf("document type %w", ErrNotFound)
	ErrRequirementNotFound  = fmt.Errorf("requirement %w", ErrNotFound)
	ErrUploadNotFound       = fmt.Errorf("upload %w", ErrNotFound)
)

// notFound maps sql.ErrNoRows to target and passes other errors through.
func notFound(err, target error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return target
	}
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
