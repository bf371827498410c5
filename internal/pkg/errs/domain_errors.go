package errs

import "errors"

// Error taxonomy shared by the gateways, the wizard and the handlers
var (
	// Catalog errors
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// Availability errors (logged, never surfaced to callers)
	ErrAvailabilityQueryFailed = errors.New("availability query failed")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Reservation errors
	ErrNoSlotsAvailable           = errors.New("no slots available")
	ErrReservationRejected        = errors.New("reservation rejected")
	ErrReservationTransportFailed = errors.New("reservation transport failed")
	ErrDuplicateReservation       = errors.New("duplicate reservation request")
	ErrIdempotencyInProgress      = errors.New("idempotent request still in progress")

	// Wizard errors
	ErrSessionNotFound     = errors.New("wizard session not found")
	ErrStepLocked          = errors.New("step requirements not met")
	ErrSubmissionInFlight  = errors.New("submission already in progress")
	ErrDateNotSelectable   = errors.New("date not selectable")
	ErrSessionStoreFailure = errors.New("session store failure")
)
