package service

import (
	"errors"
	"fmt"
)

// ValidationError rejects malformed profile data before any write reaches
// storage. Surfaced to the profile owner.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SyncError means the listing upsert (or one of its collaborator writes)
// failed or timed out. The profile write the sync was triggered by must be
// reported as "saved but not yet visible"; re-issuing the sync is safe.
type SyncError struct {
	CompanionID uint
	Err         error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync companion %d: %v", e.CompanionID, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// QueryError wraps storage failures during catalog reads. Retried by the
// caller with backoff, never internally.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("catalog query: %v", e.Err) }

func (e *QueryError) Unwrap() error { return e.Err }

// ErrListingUnavailable is returned by single-listing views when the listing
// does not exist or is not active for the viewer.
var ErrListingUnavailable = errors.New("listing unavailable")
