package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate      *validator.Validate
	rePhoneNumber = regexp.MustCompile(`^\+[1-9]\d{9,14}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return rePhoneNumber.MatchString(fl.Field().String())
}
