package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"gym-retention-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest checks a bound request DTO against its validate tags and
// folds all violations into a single ValidationError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.NewValidation(err.Error())
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}

	return apperror.NewValidation(strings.Join(messages, "; "))
}
