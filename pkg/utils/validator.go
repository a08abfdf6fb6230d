package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var (
	nationalIDPattern = regexp.MustCompile(`^\d{5}-\d{7}-\d{1}$|^\d{13}$`)
	phonePattern      = regexp.MustCompile(`^(03\d{9}|\+92\d{10})$`)
)

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("nationalid", validateNationalID)
	Validate.RegisterValidation("pkphone", validatePhone)
}

func validateNationalID(fl validator.FieldLevel) bool {
	return nationalIDPattern.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {

		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must be at least %s characters/value.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must be at most %s characters/value.", element.Field, err.Param())
			case "email":
				element.Msg = "Email format is not valid."
			case "url":
				element.Msg = fmt.Sprintf("Field '%s' must be a valid URL.", element.Field)
			case "oneof":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			case "datetime":
				element.Msg = fmt.Sprintf("Field '%s' must be a date in the form %s.", element.Field, err.Param())
			case "nationalid":
				element.Msg = "National ID must be in the format XXXXX-XXXXXXX-X or XXXXXXXXXXXXX."
			case "pkphone":
				element.Msg = "Phone number must be in the format 03XXXXXXXXX or +92XXXXXXXXXX."
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
