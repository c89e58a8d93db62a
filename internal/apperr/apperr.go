// Package apperr defines the error taxonomy shared by the library services.
// Every service returns *Error values so the transport layer can choose a
// status code without inspecting messages.
package apperr

import (
	"errors"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindStorage
	KindAdapter
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindStorage:
		return "storage"
	case KindAdapter:
		return "adapter"
	default:
		return "unknown"
	}
}

const (
	CodeInvalidInput       = "VALIDATION_ERROR"
	CodeInvalidPatronID    = "INVALID_PATRON_ID"
	CodeDuplicateISBN      = "DUPLICATE_ISBN"
	CodeBookNotFound       = "BOOK_NOT_FOUND"
	CodeUnavailable        = "UNAVAILABLE"
	CodeBorrowLimit        = "BORROW_LIMIT_EXCEEDED"
	CodeNotBorrowed        = "NOT_BORROWED"
	CodeNoLateFees         = "NO_LATE_FEES"
	CodeInvalidTransaction = "INVALID_TRANSACTION_ID"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodePaymentDeclined    = "PAYMENT_DECLINED"
	CodeGatewayError       = "GATEWAY_ERROR"
	CodeStorage            = "STORAGE_ERROR"
)

// Error is a caller-facing failure. Message is safe to show to the user;
// Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Code: CodeStorage, Message: message, Err: err}
}

func Adapter(code, message string, err error) *Error {
	return &Error{Kind: KindAdapter, Code: code, Message: message, Err: err}
}

// KindOf reports the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the code of err, or "" if err is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// MessageOf returns the caller-facing message of err. Errors outside the
// taxonomy get a generic message so driver details never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
