package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ClientError marks failures caused by the request itself. The error handler
// middleware maps these to 400 instead of 500.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

func NewClientError(format string, args ...interface{}) *ClientError {
	return &ClientError{Message: fmt.Sprintf(format, args...)}
}

// ValidateRequest runs struct tag validation and reports offending fields.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", ve.Field(), ve.Tag()))
			}
			return NewClientError("validation failed: %s", strings.Join(fields, ", "))
		}
		return NewClientError("validation failed: %v", err)
	}
	return nil
}
