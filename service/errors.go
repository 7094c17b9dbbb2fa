package service

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindUnauthorized ErrorKind = iota + 1
	KindForbidden
	KindNotFound
	KindValidation
	KindUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Error 业务错误，handler 按 Kind 映射状态码
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// PublicMsg 不包含底层错误
func (e *Error) PublicMsg() string { return e.Msg }

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func ErrUnauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Msg: "please sign in"}
}

func ErrForbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

// ErrNotFound entity 为资源名，如 "User"、"Article"
func ErrNotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Msg: entity + " not found"}
}

func ErrValidation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func ErrUnavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Msg: "service temporarily unavailable", Err: err}
}

// KindOf 非业务错误返回 0
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
