package validation

import (
	"fmt"
	"regexp"
	"time"
)

// now is the clock used by date rules.
var now = time.Now

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+503|\+504|\+502)\s7\d{3}\s?\d{4}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
)

func pick(msg []string, fallback string) string {
	if len(msg) > 0 && msg[0] != "" {
		return msg[0]
	}
	return fallback
}

// Required fails on nil, zero dates and blank text.
func Required(msg ...string) Rule {
	return Rule{Required: &Message{Message: pick(msg, "Este campo es requerido")}}
}

func MinLength(n int, msg ...string) Rule {
	return Rule{MinLength: &Length{
		Value:   n,
		Message: pick(msg, fmt.Sprintf("Debe tener al menos %d caracteres", n)),
	}}
}

func MaxLength(n int, msg ...string) Rule {
	return Rule{MaxLength: &Length{
		Value:   n,
		Message: pick(msg, fmt.Sprintf("No puede tener más de %d caracteres", n)),
	}}
}

func Email(msg ...string) Rule {
	return Rule{Pattern: &Pattern{
		Value:   emailPattern,
		Message: pick(msg, "Ingresa un correo electrónico válido"),
	}}
}

// Phone accepts "+503 7XXX XXXX" (and +502 / +504) with at least 12 characters.
func Phone(msg ...string) Rule {
	return Rule{
		Pattern: &Pattern{
			Value:   phonePattern,
			Message: pick(msg, "Ingresa un número de teléfono válido"),
		},
		MinLength: &Length{
			Value:   12,
			Message: "El teléfono debe tener al menos 8 dígitos con código",
		},
	}
}

func Password(msg ...string) Rule {
	return Rule{MinLength: &Length{
		Value:   8,
		Message: pick(msg, "La contraseña debe tener al menos 8 caracteres"),
	}}
}

// LoginPassword only requires a value; length is checked at registration.
func LoginPassword(msg ...string) Rule {
	return Required(pick(msg, "La contraseña es requerida"))
}

// ConfirmPassword accepts only a value byte-for-byte equal to other.
func ConfirmPassword(other string) Rule {
	return Rule{Validate: func(value any) string {
		s, _ := value.(string)
		if s == other {
			return ""
		}
		return "Las contraseñas no coinciden"
	}}
}

// Name requires at least two characters, all Latin letters or spaces.
func Name(label string) Rule {
	if label == "" {
		label = "campo"
	}
	return Rule{
		MinLength: &Length{
			Value:   2,
			Message: fmt.Sprintf("El %s debe tener al menos 2 caracteres", label),
		},
		Pattern: &Pattern{
			Value:   namePattern,
			Message: fmt.Sprintf("El %s solo puede contener letras", label),
		},
	}
}

// BirthDate requires an age between 13 and 120 and a date not in the future.
func BirthDate(msg ...string) Rule {
	return Rule{
		Required: &Message{Message: pick(msg, "Debes seleccionar una fecha de nacimiento válida")},
		Validate: func(value any) string {
			birth, ok := asTime(value)
			if !ok {
				return "Debes seleccionar una fecha de nacimiento"
			}

			today := now()
			age := today.Year() - birth.Year()
			monthDiff := int(today.Month()) - int(birth.Month())

			if age < 13 || (age == 13 && monthDiff < 0) {
				return "Debes ser mayor de 13 años"
			}
			if age > 120 {
				return "Fecha de nacimiento no válida"
			}
			if birth.After(today) {
				return "La fecha de nacimiento no puede ser futura"
			}
			return ""
		},
	}
}

// StartDate requires a date that is not in the future.
func StartDate(msg ...string) Rule {
	return Rule{
		Required: &Message{Message: pick(msg, "La fecha de inicio es requerida")},
		Validate: func(value any) string {
			d, ok := asTime(value)
			if !ok {
				return "Debes seleccionar una fecha de inicio"
			}
			if d.After(now()) {
				return "La fecha de inicio no puede ser futura"
			}
			return ""
		},
	}
}

// EndDate requires a date that is not in the future and not before start.
func EndDate(start *time.Time, msg ...string) Rule {
	return Rule{
		Required: &Message{Message: pick(msg, "La fecha de fin es requerida")},
		Validate: func(value any) string {
			d, ok := asTime(value)
			if !ok {
				return "Debes seleccionar una fecha de fin"
			}
			if d.After(now()) {
				return "La fecha de fin no puede ser futura"
			}
			if start != nil && d.Before(*start) {
				return "La fecha de fin debe ser posterior a la fecha de inicio"
			}
			return ""
		},
	}
}
