// Package apperr defines the failure kinds returned by the circulation ledgers.
//
// Every business failure carries a Kind (what went wrong, used for errors.Is and
// status mapping), a Reason (which rule or entity, e.g. "loan_limit") and a
// human-readable message naming the offending identifiers.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPolicyViolation
	KindConflict
	KindAlreadyClosed
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindPolicyViolation:
		return "POLICY_VIOLATION"
	case KindConflict:
		return "CONFLICT"
	case KindAlreadyClosed:
		return "ALREADY_CLOSED"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// Reasons used across the ledgers.
const (
	ReasonBook              = "book"
	ReasonBorrower          = "borrower"
	ReasonLoan              = "loan"
	ReasonAccount           = "account"
	ReasonLoanLimit         = "loan_limit"
	ReasonUnpaidFines       = "unpaid_fines"
	ReasonAlreadyCheckedOut = "already_checked_out"
	ReasonSelfDuplicate     = "self_duplicate"
	ReasonDuplicateSSN      = "duplicate_ssn"
	ReasonUsernameTaken     = "username_taken"
	ReasonNoBorrowerCard    = "no_borrower_card"
)

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrPolicyViolation = &Error{Kind: KindPolicyViolation, Message: "policy violation"}
	ErrConflict        = &Error{Kind: KindConflict, Message: "conflict"}
	ErrAlreadyClosed   = &Error{Kind: KindAlreadyClosed, Message: "already closed"}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument, Message: "invalid argument"}
)

type Error struct {
	Kind    Kind
	Reason  string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports kind equality so that errors.Is(err, ErrNotFound) matches every
// not-found failure regardless of reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newf(kind Kind, reason, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func NotFound(reason, format string, args ...any) *Error {
	return newf(KindNotFound, reason, format, args...)
}

func PolicyViolation(reason, format string, args ...any) *Error {
	return newf(KindPolicyViolation, reason, format, args...)
}

func Conflict(reason, format string, args ...any) *Error {
	return newf(KindConflict, reason, format, args...)
}

func AlreadyClosed(format string, args ...any) *Error {
	return newf(KindAlreadyClosed, ReasonLoan, format, args...)
}

func InvalidArgument(format string, args ...any) *Error {
	return newf(KindInvalidArgument, "", format, args...)
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ReasonOf returns the reason of the first *Error in err's chain.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return ""
}
