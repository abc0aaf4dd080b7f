// Package assets stores applicant-supplied files (passport photo, supporting
// document) in object storage and reports a durable public URL per upload.
package assets

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/rcnapps/ordinand/internal/logging"
)

// Asset categories; each maps to a key prefix inside the bucket.
const (
	CategoryPassports = "passports"
	CategoryDocuments = "documents"
)

// ObjectStore is the minimal object-storage contract the uploader depends on.
type ObjectStore interface {
	// EnsureBucket provisions the destination bucket if it does not exist.
	// Safe to call on every upload.
	EnsureBucket(ctx context.Context) error
	// Put stores data under key.
	Put(ctx context.Context, key, contentType string, data []byte) error
	// PublicURL resolves the durable public URL of a stored key.
	PublicURL(key string) string
}

// Status reports what happened to one asset during a submission attempt.
// The three states are deliberately distinct: callers must be able to tell
// "nothing selected" apart from "selected but the upload failed".
type Status int

const (
	NotAttempted Status = iota
	Failed
	Uploaded
)

// Outcome is the result of one upload attempt.
type Outcome struct {
	Status Status
	URL    string
}

// Uploader turns a selected file into a stored object.
type Uploader struct {
	store            ObjectStore
	logger           logging.Logger
	passportMaxBytes int64
}

// NewUploader constructs an Uploader. passportMaxBytes caps the passport
// photo category; zero disables the cap.
func NewUploader(store ObjectStore, passportMaxBytes int64, logger logging.Logger) *Uploader {
	return &Uploader{
		store:            store,
		logger:           logger.With("module", "assets"),
		passportMaxBytes: passportMaxBytes,
	}
}

// StorageKey builds a collision-resistant key for a file in the given
// category: category/<uuid>.<original extension>.
func StorageKey(category, fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		return fmt.Sprintf("%s/%s", category, uuid.New())
	}
	return fmt.Sprintf("%s/%s.%s", category, uuid.New(), ext)
}

// Upload stores the file and returns its outcome. Failures never propagate:
// oversized files fail fast before any network call, storage errors are
// logged and reported as a Failed outcome. The caller decides whether a
// failed upload is fatal to the submission.
func (u *Uploader) Upload(ctx context.Context, category, fileName, contentType string, data []byte) Outcome {
	if category == CategoryPassports && u.passportMaxBytes > 0 && int64(len(data)) > u.passportMaxBytes {
		u.logger.Warn(ctx, "file exceeds the size limit",
			"category", category, "file", fileName, "size", len(data), "limit", u.passportMaxBytes)
		return Outcome{Status: Failed}
	}

	if err := u.store.EnsureBucket(ctx); err != nil {
		u.logger.Error(ctx, "bucket provisioning failed", "category", category, "error", err)
		return Outcome{Status: Failed}
	}

	key := StorageKey(category, fileName)
	if err := u.store.Put(ctx, key, contentType, data); err != nil {
		u.logger.Error(ctx, "upload failed", "category", category, "key", key, "error", err)
		return Outcome{Status: Failed}
	}

	return Outcome{Status: Uploaded, URL: u.store.PublicURL(key)}
}
