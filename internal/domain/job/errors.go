package job

import "errors"

var (
	ErrPostingNotFound     = errors.New("job posting not found")
	ErrPostingNotOpen      = errors.New("job posting is not accepting applications")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied to this posting")
)
