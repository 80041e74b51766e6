package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that a debit would drive an account balance below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrProtectedResource indicates an attempt to remove a reserved resource,
// such as the central bank account.
var ErrProtectedResource = errors.New("protected resource")

// Ledger-specific conditions, each wrapping one of the base kinds so callers can
// match either the exact condition or its broader category with errors.Is.
var (
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrZeroAmount        = fmt.Errorf("%w: amount must be non-zero", ErrValidation)
	ErrSameAccount       = fmt.Errorf("%w: cannot transfer to the same account", ErrValidation)
	ErrInvalidCode       = fmt.Errorf("%w: invalid registration code", ErrValidation)
	ErrAlreadyRegistered = fmt.Errorf("%w: user already registered", ErrDuplicate)
	ErrDuplicateCode     = fmt.Errorf("%w: code already exists", ErrDuplicate)
)
