package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInternal indicates an unclassified internal failure.
var ErrInternal = errors.New("internal error")

// LedgerErrorKind classifies failures of calls crossing the ledger boundary.
type LedgerErrorKind string

const (
	// LedgerUnreachable covers connection errors, timeouts and 5xx responses.
	LedgerUnreachable LedgerErrorKind = "UNREACHABLE"
	// LedgerRejected means the remote refused the request (4xx). Not retryable.
	LedgerRejected LedgerErrorKind = "REJECTED"
	// LedgerMalformed means the response body could not be decoded. Not retryable.
	LedgerMalformed LedgerErrorKind = "MALFORMED"
)

// LedgerError is returned by the ledger client for any failed remote call.
type LedgerError struct {
	Kind LedgerErrorKind
	Op   string // "fetch" or "submit"
	Err  error
}

func (e *LedgerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ledger %s failed (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("ledger %s failed (%s)", e.Op, e.Kind)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure may be retried for an idempotent call.
func (e *LedgerError) Retryable() bool {
	return e.Kind == LedgerUnreachable
}

// SagaError reports a partially completed account opening: the account exists
// in the account store but its opening transaction never reached the ledger.
// The account store has no delete, so there is no compensation path; the
// divergence is surfaced to the caller instead of being hidden behind a plain
// success or a plain failure.
type SagaError struct {
	AccountCreated bool
	LedgerRecorded bool
	AccountID      int
	Err            error
}

func (e *SagaError) Error() string {
	return fmt.Sprintf("account opening diverged: accountCreated=%t ledgerRecorded=%t accountID=%d: %v",
		e.AccountCreated, e.LedgerRecorded, e.AccountID, e.Err)
}

func (e *SagaError) Unwrap() error {
	return e.Err
}
