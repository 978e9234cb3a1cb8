package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrDocumentNotFound indicates that the document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrAttachmentNotFound indicates that the attachment was not found
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
