package order

import (
	"time"

	"wastehaul/internal/pkg/errs"
)

// Evidence is a photo reference attached to a status transition as proof of
// the pickup or drop-off state. The photo itself lives with the evidence
// collaborator; the order only keeps the opaque reference.
type Evidence struct {
	status     Status
	photoRef   string
	recordedAt time.Time
}

// NewEvidence creates an evidence record for the transition into status.
func NewEvidence(status Status, photoRef string, recordedAt time.Time) (Evidence, error) {
	if err := status.Validate(); err != nil {
		return Evidence{}, err
	}
	if photoRef == "" {
		return Evidence{}, errs.NewValueIsRequiredError("photo reference")
	}
	return Evidence{status: status, photoRef: photoRef, recordedAt: recordedAt}, nil
}

// Status returns the transition target the photo documents.
func (e Evidence) Status() Status {
	return e.status
}

// PhotoRef returns the opaque photo reference.
func (e Evidence) PhotoRef() string {
	return e.photoRef
}

// RecordedAt returns when the evidence was attached.
func (e Evidence) RecordedAt() time.Time {
	return e.recordedAt
}
