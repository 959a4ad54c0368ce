// Package errs provides the standardized error types of the waste-pickup core.
//
// Two families live here. The generic validation kinds (ValueIsRequiredError,
// ValueIsInvalidError, ObjectNotFoundError, ValueIsOutOfRangeError) are used
// by value objects and repositories. The workflow kinds in domain.go
// (Unauthorized, InvalidTransition, EvidenceRequired, ResourceBusy,
// NoCandidateAvailable, ConcurrentModification, AlreadyTerminal,
// CollaboratorUnavailable) are the complete error surface of the order
// lifecycle operations.
//
// Each type follows the same pattern: a sentinel error variable, a struct
// carrying the details, constructors with and without a cause, and an
// Unwrap method so errors.Is classifies against the sentinel.
package errs
