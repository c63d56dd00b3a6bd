package weather

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindInvalidInput marks caller mistakes: empty city, malformed date,
	// inverted temperature range.
	KindInvalidInput ErrorKind = iota + 1
	// KindNotFound is returned only when the provider explicitly reports an
	// unknown location, never for transient failures.
	KindNotFound
	// KindUpstreamUnavailable covers provider errors, timeouts, malformed
	// upstream payloads and backing-store outages.
	KindUpstreamUnavailable
)

type Error struct {
	Kind            ErrorKind
	Detail          string
	UnsupportedDate bool
	Err             error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewInvalidInput(detail string) *Error {
	return &Error{Kind: KindInvalidInput, Detail: detail}
}

func NewNotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

func NewUpstreamUnavailable(detail string, err error) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Detail: detail, Err: err}
}

// NewUnsupportedDate marks an out-of-horizon forecast date so callers can tell
// it apart from a transient outage.
func NewUnsupportedDate(detail string) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Detail: detail, UnsupportedDate: true}
}

// NewStoreUnavailable reports a cache or override-store outage. A store outage
// must never be mistaken for a miss.
func NewStoreUnavailable(detail string, err error) *Error {
	return &Error{Kind: KindUpstreamUnavailable, Detail: detail, Err: err}
}

// KindOf extracts the error kind, defaulting unknown errors to upstream-unavailable.
func KindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindUpstreamUnavailable
}

func IsUnsupportedDate(err error) bool {
	var domainErr *Error
	return errors.As(err, &domainErr) && domainErr.UnsupportedDate
}
