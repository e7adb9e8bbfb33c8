package job

import "errors"

// Job-related errors
var (
	ErrInvalidJobID = errors.New("invalid job ID")
	ErrJobNotFound  = errors.New("job not found")
)
