package utils

import (
	"mediconnect-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("time_hhmm", validateTimeHHMM)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(constvars.RegexPhoneNumberDigits)
	return re.MatchString(phoneNumber)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	return re.MatchString(fl.Field().String())
}

func validateTimeHHMM(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexTimeHHMM)
	return re.MatchString(fl.Field().String())
}
