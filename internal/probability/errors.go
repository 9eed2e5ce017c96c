package probability

// ProbabilityError is a custom error type for probability calculation errors
type ProbabilityError string

// Error implements the error interface
func (e ProbabilityError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidArgument ProbabilityError = "invalid argument"
)
