package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/todolists-api/internal/domain"
)

// Location prefixes used in ErrorDetail.Location.
const (
	LocationBody = "body."
	LocationPath = "path."
)

const msgMustNotBeEmpty = "must not be empty"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}

	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// notBlank rejects strings that are empty after trimming whitespace.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// validationMessage returns the client-facing text for a failed tag.
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return domain.MsgRequired
	case "notblank":
		return msgMustNotBeEmpty
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// validateStruct runs the struct tags on req and converts failures to a
// *domain.ValidationError keyed by JSON field name.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, e := range fieldErrs {
		fields[e.Field()] = validationMessage(e)
	}
	return &domain.ValidationError{Fields: fields}
}
