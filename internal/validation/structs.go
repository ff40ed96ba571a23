package validation

import (
	"errors"
	"regexp"
	"strings"

	"boxful-client/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// strictPhone is the registration pre-flight format; the space between
// digit groups is mandatory here.
var strictPhone = regexp.MustCompile(`^(\+503|\+504|\+502)\s7\d{3}\s\d{4}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_ca", func(fl validator.FieldLevel) bool {
		return strictPhone.MatchString(strings.TrimSpace(fl.Field().String()))
	})
}

// ValidateStruct validates a struct using validation tags.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// PreflightRegistration checks a registration before it is sent and
// returns a user-facing message, or "" when it may be sent.
func PreflightRegistration(r domain.Registration) string {
	err := ValidateStruct(r)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Datos de registro inválidos"
	}

	// Phone is reported before the password match regardless of field order.
	for _, fe := range verrs {
		if fe.Field() == "Phone" {
			return "El número de teléfono no tiene un formato válido"
		}
	}
	for _, fe := range verrs {
		if fe.Field() == "ConfirmPassword" {
			return "Las contraseñas no coinciden"
		}
	}
	return "Datos de registro inválidos: " + strings.ToLower(verrs[0].Field())
}
