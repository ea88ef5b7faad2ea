package errors

import (
	"errors"
	"fmt"
)

type ResourceNotFoundError struct {
	resource string
	id       string
}

func NewResourceNotFoundError(resource, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{resource: resource, id: id}
}

func NewAudiobookNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("audiobook", id)
}

func (e *ResourceNotFoundError) Error() string {
	if e.id == "" {
		return fmt.Sprintf("%s not found", e.resource)
	}
	return fmt.Sprintf("%s %q not found", e.resource, e.id)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

type ScanInProgressError struct {
	libraryID string
}

func NewScanInProgressError(libraryID string) *ScanInProgressError {
	return &ScanInProgressError{libraryID: libraryID}
}

func (e *ScanInProgressError) Error() string {
	return fmt.Sprintf("a scan of library %q is already in progress", e.libraryID)
}

func IsScanInProgressError(err error) bool {
	var e *ScanInProgressError
	return errors.As(err, &e)
}

type InvalidLibraryError struct {
	path string
	err  error
}

func NewInvalidLibraryError(path string, err error) *InvalidLibraryError {
	return &InvalidLibraryError{path: path, err: err}
}

func (e *InvalidLibraryError) Error() string {
	return fmt.Sprintf("invalid library path %q: %v", e.path, e.err)
}

func (e *InvalidLibraryError) Unwrap() error {
	return e.err
}

func IsInvalidLibraryError(err error) bool {
	var e *InvalidLibraryError
	return errors.As(err, &e)
}

type UnauthorizedError struct {
	reason string
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{reason: reason}
}

func (e *UnauthorizedError) Error() string {
	return "unauthorized: " + e.reason
}
