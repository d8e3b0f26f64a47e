package model

import "errors"

// ErrorResponse is the consistent JSON structure for all API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ErrorKind identifies one row of the custody error taxonomy.
type ErrorKind int

const (
	KindDerivation ErrorKind = iota + 1
	KindEncoding
	KindAuthentication
	KindConflict
	KindNotFound
)

// Code returns the stable machine-readable code used in ErrorResponse.
func (k ErrorKind) Code() string {
	switch k {
	case KindDerivation:
		return "derivation_failed"
	case KindEncoding:
		return "invalid_encoding"
	case KindAuthentication:
		return "authentication_failed"
	case KindConflict:
		return "already_exists"
	case KindNotFound:
		return "not_found"
	}
	return "internal"
}

func (k ErrorKind) String() string {
	return k.Code()
}

// Error is a custody error of a known kind. Msg never contains key material.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Sentinel values for errors.Is comparisons. Matching is by Kind only.
var (
	ErrDerivation     = &Error{Kind: KindDerivation, Msg: "key derivation failed"}
	ErrEncoding       = &Error{Kind: KindEncoding, Msg: "invalid key encoding"}
	ErrAuthentication = &Error{Kind: KindAuthentication, Msg: "authentication failed"}
	ErrConflict       = &Error{Kind: KindConflict, Msg: "wallet already exists"}
	ErrNotFound       = &Error{Kind: KindNotFound, Msg: "wallet not found"}
)

// NewError builds an error of the given kind at the point of failure.
func NewError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a custody error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first custody error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
