package sandbox

import "errors"

var (
	ErrTimeout  = errors.New("execution timed out")
	ErrCanceled = errors.New("execution canceled")
)
