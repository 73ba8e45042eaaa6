package service

import "errors"

// Domain errors. Handlers translate these to HTTP statuses with errors.Is;
// everything else is treated as an internal fault. They are deterministic
// business-rule violations, never retried.
var (
	// ErrNotFound: the referenced entity is missing or soft-deleted.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock: a sale was attempted against insufficient stock. This is
	// a client error, not a server fault.
	ErrOutOfStock = errors.New("out of stock")

	// ErrInvalidReason: unrecognized stock change reason.
	ErrInvalidReason = errors.New("invalid change reason")

	// ErrNegativeStock: requested stock value below zero.
	ErrNegativeStock = errors.New("stock must not be negative")

	// ErrValidation: malformed or out-of-range input shape.
	ErrValidation = errors.New("validation error")

	// ErrConflict: the row changed under us (optimistic stock check) or a
	// uniqueness rule was violated.
	ErrConflict = errors.New("conflict")
)
