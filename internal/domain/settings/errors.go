package settings

import "errors"

var (
	ErrInvalidSettings = errors.New("invalid attendance settings")
)
