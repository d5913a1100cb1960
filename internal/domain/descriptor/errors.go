package descriptor

import (
	"errors"
	"fmt"
)

// Validation messages. Kept as short, user-facing strings so the editing
// layer can attach them directly to the offending field.
const (
	MsgMissing       = "Missing"
	MsgInvalid       = "Invalid"
	MsgInvalidDomain = "Invalid domain"
)

// ValidationError is a user-correctable, field-scoped failure. Anything else
// (I/O, parse, probe failures) travels as a plain wrapped error.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AsValidationError unwraps err into a ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
