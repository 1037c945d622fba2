package adapter

import "errors"

var (
	ErrEmptyAddress    = errors.New("empty address")
	ErrInvalidAddress  = errors.New("address must include host and scheme")
	ErrUnexpectedReply = errors.New("unexpected reply from server")
)
