// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

// Sentinel errors for the business error taxonomy. Services wrap these with
// fmt.Errorf("...: %w", ...) and the HTTP layer maps them onto the response
// envelope or a 401/403.
var (
	// ErrAuthentication covers missing, invalid and expired tokens.
	ErrAuthentication = errors.New("authentication failed")
	// ErrAuthorization covers a valid session with the wrong role or a
	// missing tool entitlement.
	ErrAuthorization = errors.New("access denied")
	// ErrValidation covers malformed input and missing or inactive
	// referenced entities.
	ErrValidation = errors.New("validation failed")
	// ErrIllegalTransition covers request state machine rule violations.
	ErrIllegalTransition = errors.New("illegal request transition")
	// ErrConflict covers uniqueness violations such as a duplicate
	// entitlement or a second credential assignment.
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("resource not found")
	// ErrDecryption covers malformed vault blobs and key mismatches.
	ErrDecryption = errors.New("decryption failed")
	// ErrInfrastructure covers unreachable remote databases and other
	// faults whose detail must be logged, not surfaced.
	ErrInfrastructure = errors.New("infrastructure failure")
)
