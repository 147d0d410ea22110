package model

import (
	"context"
	"errors"
)

// Service error taxonomy. Gateways wrap these so callers can use errors.Is.
var (
	// ErrTransient marks network, rate limit and server failures worth retrying
	ErrTransient = errors.New("temporary service failure")

	// ErrNotFound marks an invalid or unknown identifier
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a missing, expired or insufficient access token
	ErrUnauthorized = errors.New("unauthorized")
)

// ErrorKind classifies an error for presentation
type ErrorKind int

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindTransient
	ErrorKindNotFound
	ErrorKindUnauthorized
	ErrorKindCanceled
)

// String returns a short name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNone:
		return "none"
	case ErrorKindTransient:
		return "transient"
	case ErrorKindNotFound:
		return "not_found"
	case ErrorKindUnauthorized:
		return "unauthorized"
	case ErrorKindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// KindOf classifies err. Unclassified errors are treated as transient.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrNotFound):
		return ErrorKindNotFound
	case errors.Is(err, ErrUnauthorized):
		return ErrorKindUnauthorized
	case errors.Is(err, context.Canceled):
		return ErrorKindCanceled
	default:
		return ErrorKindTransient
	}
}

// IsRetryable reports whether repeating the same request may succeed
func IsRetryable(err error) bool {
	return KindOf(err) == ErrorKindTransient
}
