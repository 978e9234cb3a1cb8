package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrDocumentNotFound indicates that document was not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrVersionConflict indicates that a concurrent writer advanced the
	// document version between classification and write
	ErrVersionConflict = errors.New("document version conflict")

	// ErrAttachmentNotFound indicates that attachment was not found
	ErrAttachmentNotFound = errors.New("attachment not found")
)
