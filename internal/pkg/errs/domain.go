package errs

import "fmt"

// Sentinel errors for the order-workflow error kinds. Every failure surfaced
// by the core unwraps to exactly one of these, so callers can classify with
// errors.Is and decide whether a retry makes sense. ErrConcurrentModification
// is the only kind safe to retry without operator intervention.
var (
	ErrUnauthorized            = fmt.Errorf("actor is not authorized")
	ErrInvalidTransition       = fmt.Errorf("status transition is not allowed")
	ErrEvidenceRequired        = fmt.Errorf("evidence photo is required")
	ErrResourceBusy            = fmt.Errorf("resource is busy")
	ErrNoCandidateAvailable    = fmt.Errorf("no candidate available")
	ErrConcurrentModification  = fmt.Errorf("concurrent modification detected")
	ErrAlreadyTerminal         = fmt.Errorf("order is already terminal")
	ErrCollaboratorUnavailable = fmt.Errorf("collaborator is unavailable")
)

// UnauthorizedError indicates the acting identity lacks the role or
// membership required for the attempted operation.
type UnauthorizedError struct {
	Operation string
}

// NewUnauthorizedError creates an UnauthorizedError for the named operation.
func NewUnauthorizedError(operation string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation}
}

func (e *UnauthorizedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrUnauthorized, e.Operation))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidTransitionError indicates the requested status is not a direct
// successor of the order's current status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// attempted from/to status pair.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// EvidenceRequiredError indicates a transition that mandates at least one
// photo reference was attempted without any.
type EvidenceRequiredError struct {
	Transition string
}

// NewEvidenceRequiredError creates an EvidenceRequiredError for the named transition.
func NewEvidenceRequiredError(transition string) *EvidenceRequiredError {
	return &EvidenceRequiredError{Transition: transition}
}

func (e *EvidenceRequiredError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrEvidenceRequired, e.Transition))
}

func (e *EvidenceRequiredError) Unwrap() error {
	return ErrEvidenceRequired
}

// ResourceBusyError indicates a vehicle or driver is not available for
// assignment.
type ResourceBusyError struct {
	Resource string
	ID       any
}

// NewResourceBusyError creates a ResourceBusyError for the named resource.
func NewResourceBusyError(resource string, id any) *ResourceBusyError {
	return &ResourceBusyError{Resource: resource, ID: id}
}

func (e *ResourceBusyError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v", ErrResourceBusy, e.Resource, e.ID))
}

func (e *ResourceBusyError) Unwrap() error {
	return ErrResourceBusy
}

// NoCandidateAvailableError indicates an empty candidate pool at dispatch time.
type NoCandidateAvailableError struct {
	Pool string
}

// NewNoCandidateAvailableError creates a NoCandidateAvailableError for the
// named candidate pool.
func NewNoCandidateAvailableError(pool string) *NoCandidateAvailableError {
	return &NoCandidateAvailableError{Pool: pool}
}

func (e *NoCandidateAvailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrNoCandidateAvailable, e.Pool))
}

func (e *NoCandidateAvailableError) Unwrap() error {
	return ErrNoCandidateAvailable
}

// ConcurrentModificationError indicates an optimistic-concurrency conflict:
// the record changed between read and commit. Callers should re-read and retry.
type ConcurrentModificationError struct {
	ParamName string
	ID        any
}

// NewConcurrentModificationError creates a ConcurrentModificationError for
// the named record.
func NewConcurrentModificationError(paramName string, id any) *ConcurrentModificationError {
	return &ConcurrentModificationError{ParamName: paramName, ID: id}
}

func (e *ConcurrentModificationError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %v", ErrConcurrentModification, e.ParamName, e.ID))
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}

// AlreadyTerminalError indicates a mutation attempt on an order whose
// lifecycle has finished.
type AlreadyTerminalError struct {
	Status string
}

// NewAlreadyTerminalError creates an AlreadyTerminalError carrying the
// order's current status.
func NewAlreadyTerminalError(status string) *AlreadyTerminalError {
	return &AlreadyTerminalError{Status: status}
}

func (e *AlreadyTerminalError) Error() string {
	return sanitize(fmt.Sprintf("%s: status is %s", ErrAlreadyTerminal, e.Status))
}

func (e *AlreadyTerminalError) Unwrap() error {
	return ErrAlreadyTerminal
}

// CollaboratorUnavailableError indicates a storage or network failure from an
// external collaborator. It never implies the order's committed status changed.
type CollaboratorUnavailableError struct {
	Collaborator string
	Cause        error
}

// NewCollaboratorUnavailableError creates a CollaboratorUnavailableError
// wrapping the underlying failure.
func NewCollaboratorUnavailableError(collaborator string, cause error) *CollaboratorUnavailableError {
	return &CollaboratorUnavailableError{Collaborator: collaborator, Cause: cause}
}

func (e *CollaboratorUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrCollaboratorUnavailable, e.Collaborator, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrCollaboratorUnavailable, e.Collaborator))
}

func (e *CollaboratorUnavailableError) Unwrap() error {
	return ErrCollaboratorUnavailable
}
