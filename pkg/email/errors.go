package email

import "errors"

var (
	ErrInvalidConfig  = errors.New("email.errors.invalid_config")
	ErrInvalidMessage = errors.New("email.errors.invalid_message")
	ErrSendFailed     = errors.New("email.errors.send_failed")
)
