package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrValidatorUnavailable = errors.New("validator is unavailable")
	ErrUnexpectedValidation = errors.New("unexpected validation failure")
)
