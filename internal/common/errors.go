// Package common defines shared constants and sentinel errors used across the
// service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Wizard flow errors.
	ErrorSessionNotFound = errors.New("session not found")
	ErrorWrongStep       = errors.New("action not allowed at current step")
	ErrorValidation      = errors.New("validation failed")

	// Asset errors.
	ErrorAssetTooLarge = errors.New("file exceeds the size limit")
	ErrorUploadFailed  = errors.New("upload failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
