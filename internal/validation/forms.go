package validation

import (
	"boxful-client/internal/domain"
)

// DraftSchema covers every step-1 field of the order wizard.
func DraftSchema() Schema {
	return Schema{
		{domain.FieldPickupAddress, Required("La dirección de recolección es requerida")},
		{domain.FieldEstimatedDate, Required("La fecha estimada es requerida")},
		{domain.FieldFirstName, Merge(Required("El nombre es requerido"), Name("nombre"))},
		{domain.FieldLastName, Merge(Required("El apellido es requerido"), Name("apellido"))},
		{domain.FieldEmail, Merge(Required("El correo electrónico es requerido"), Email())},
		{domain.FieldPhone, Merge(Required("El número de teléfono es requerido"), Phone())},
		{domain.FieldDestinationAddress, Required("La dirección del destinatario es requerida")},
		{domain.FieldDepartment, Required("El departamento es requerido")},
		{domain.FieldMunicipality, Required("El municipio es requerido")},
		{domain.FieldReferencePoint, Required("El punto de referencia es requerido")},
		{domain.FieldInformation, Required("Las indicaciones son requeridas")},
	}
}

// RegistrationSchema is the sign-up form. password is the current value of
// the password field, against which the confirmation is compared.
func RegistrationSchema(password string) Schema {
	return Schema{
		{"firstName", Merge(Required("El nombre es requerido"), Name("nombre"))},
		{"lastName", Merge(Required("El apellido es requerido"), Name("apellido"))},
		{"sex", Required("El sexo es requerido")},
		{"birthDate", BirthDate()},
		{"email", Merge(Required("El correo electrónico es requerido"), Email())},
		{"phone", Merge(Required("El número de teléfono es requerido"), Phone())},
		{"password", Merge(Required("La contraseña es requerida"), Password())},
		{"confirmPassword", Merge(Required("Confirma tu contraseña"), ConfirmPassword(password))},
	}
}

// RegistrationValues exposes a Registration to RegistrationSchema.
func RegistrationValues(r domain.Registration) func(string) any {
	return func(name string) any {
		switch name {
		case "firstName":
			return r.FirstName
		case "lastName":
			return r.LastName
		case "sex":
			return r.Sex
		case "birthDate":
			return r.BirthDate
		case "email":
			return r.Email
		case "phone":
			return r.Phone
		case "password":
			return r.Password
		case "confirmPassword":
			return r.ConfirmPassword
		}
		return nil
	}
}

// LoginSchema is the login form.
func LoginSchema() Schema {
	return Schema{
		{"email", Merge(Required("El correo electrónico es requerido"), Email())},
		{"password", LoginPassword()},
	}
}

// CheckRange validates the bounds that are present: neither may be in the
// future and the end may not precede the start.
func CheckRange(r domain.DateRange) FieldErrors {
	var errs FieldErrors
	if r.Start != nil {
		if msg := StartDate().Check(r.Start); msg != "" {
			errs = append(errs, FieldError{Field: "start", Message: msg})
		}
	}
	if r.End != nil {
		if msg := EndDate(r.Start).Check(r.End); msg != "" {
			errs = append(errs, FieldError{Field: "end", Message: msg})
		}
	}
	return errs
}
