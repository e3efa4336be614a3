package domain

import "errors"

var (
	// ErrNoPrimaryAccount is returned when no account carries the primary flag
	ErrNoPrimaryAccount = errors.New("no primary account found")

	// ErrNoFundingAccount is returned when there is no non-primary account to fund transfers from
	ErrNoFundingAccount = errors.New("no funding account found")

	// ErrNotFound is returned by repositories when an entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrValidation wraps entity validation failures
	ErrValidation = errors.New("validation failed")
)
