package model

import (
	"errors"
	"fmt"
)

// Domain error codes shared by every service. Controllers translate
// codes to HTTP statuses at the boundary.

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrForbidden      ErrCode = "FORBIDDEN"
	ErrInvalidState   ErrCode = "INVALID_STATE"
	ErrBadRequest     ErrCode = "BAD_REQUEST"
	ErrDuplicateEmail ErrCode = "DUPLICATE_EMAIL"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) Code() ErrCode { return e.code }

func Err(c ErrCode, format string, args ...any) error {
	return codedError{code: c, msg: fmt.Sprintf(format, args...)}
}

// Code extracts the error code; "" for plain errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}
