package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"school-transport-backend/models"
	"school-transport-backend/pkg/dateutil"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("isodate", validateISODate)
}

// validateISODate accepts any string that carries a calendar day.
func validateISODate(fl validator.FieldLevel) bool {
	_, ok := dateutil.Normalize(fl.Field().String())
	return ok
}

func ValidateStruct(s interface{}) []*models.FieldError {
	var errs []*models.FieldError
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []*models.FieldError{{Tag: "invalid", Msg: err.Error()}}
	}

	for _, err := range validationErrors {
		var element models.FieldError
		element.Field = err.Field()
		element.Tag = err.Tag()

		switch err.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "required_if":
			element.Msg = fmt.Sprintf("Field '%s' is required when %s.", element.Field, err.Param())
		case "min":
			element.Msg = fmt.Sprintf("Field '%s' must have at least %s characters/items.", element.Field, err.Param())
		case "max":
			element.Msg = fmt.Sprintf("Field '%s' must have at most %s characters/items.", element.Field, err.Param())
		case "email":
			element.Msg = "Invalid email format."
		case "isodate":
			element.Msg = fmt.Sprintf("Field '%s' must be a date in YYYY-MM-DD format.", element.Field)
		case "oneof":
			element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
		default:
			element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
		}
		errs = append(errs, &element)
	}
	return errs
}
