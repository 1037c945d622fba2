package service

import "errors"

var (
	ErrOperatorIsNotSpecified = errors.New("operator name and student number must be specified")
	ErrTokenCreationFailed    = errors.New("token creation failed")
)
