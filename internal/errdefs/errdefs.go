package errdefs

type ErrorType int

const (
	ErrTypeNotRoot ErrorType = iota
	ErrTypeNoTargetUser
	ErrTypeUnsupportedPackageManager
	ErrTypeGreeterBuild
	ErrTypeGeneric
)

type CustomError struct {
	Type    ErrorType
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NewCustomError(errType ErrorType, message string) error {
	return &CustomError{
		Type:    errType,
		Message: message,
	}
}

var ErrNotRoot = NewCustomError(ErrTypeNotRoot, "this program must be run as root")
