package util

import (
	"errors"
	"fmt"
)

type ErrorNo uint32

const (
	ErrOk ErrorNo = iota
	ErrUnknown
	ErrCheckCrcFailed
	ErrBadBlockLength
)

type CrcError struct {
	errorNo ErrorNo
	msg     string
}

func NewCrcError(errNo ErrorNo, msg string, args ...any) *CrcError {
	return &CrcError{
		errorNo: errNo,
		msg:     fmt.Sprintf(msg, args...),
	}
}

func (err *CrcError) Error() string {
	return fmt.Sprintf("ErrorNo: %d, Msg: %s", err.errorNo, err.msg)
}

func GetErrorNo(err error) ErrorNo {
	if err == nil {
		return ErrOk
	}
	var crcErr *CrcError
	ok := errors.As(err, &crcErr)
	if !ok {
		return ErrUnknown
	}
	return crcErr.errorNo
}
