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

// ErrForbidden indicates the authenticated user lacks the role required for the operation.
var ErrForbidden = errors.New("operation not permitted")

// Submission error taxonomy. Every one of these aborts the whole submission
// with zero side effects; none are retried internally.

// ErrDocumentNotDraft is a state error: only Draft documents can be submitted.
var ErrDocumentNotDraft = errors.New("only documents in draft status can be submitted")

// ErrAlreadyPosted is a state error: the document already produced ledger
// rows. Exactly one of two concurrent submits of the same document can win;
// the other observes this error.
var ErrAlreadyPosted = errors.New("document already has ledger rows and cannot be submitted again")

// ErrMissingAccount is a lookup error: a required chart-of-accounts entry or
// per-currency control account mapping has not been provisioned.
var ErrMissingAccount = errors.New("missing chart of accounts entry")

// ErrUnsupportedDocumentType is a programming error: an unknown document
// variant reached the posting dispatcher.
var ErrUnsupportedDocumentType = errors.New("unsupported document type for submit")

// ErrEmptyJournal is a validation error: every line of the journal entry has
// zero foreign debit and credit.
var ErrEmptyJournal = errors.New("journal entry has no lines with non-zero amounts")

// ErrImbalancedPosting is a validation error: the candidate rows of one
// submission do not sum to equal base debits and credits. It guards ledger
// integrity and must never be swallowed.
var ErrImbalancedPosting = errors.New("ledger not balanced")

// AppError carries an HTTP-ish status code alongside the wrapped cause,
// used by the repository layer for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
