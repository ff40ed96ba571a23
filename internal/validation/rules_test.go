package validation

import (
	"testing"
	"time"

	"boxful-client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestRequired(t *testing.T) {
	r := Required()
	assert.Equal(t, "Este campo es requerido", r.Check(""))
	assert.Equal(t, "Este campo es requerido", r.Check("   \t"))
	assert.Equal(t, "Este campo es requerido", r.Check(nil))
	assert.Equal(t, "Este campo es requerido", r.Check((*time.Time)(nil)))
	assert.Equal(t, "", r.Check("x"))
	assert.Equal(t, "custom", Required("custom").Check(""))
}

func TestEmail(t *testing.T) {
	r := Email()
	assert.Equal(t, "", r.Check("ana@boxful.com"))
	assert.Equal(t, "", r.Check("a@b.c"))
	assert.NotEqual(t, "", r.Check("ana@boxful"))
	assert.NotEqual(t, "", r.Check("ana@@boxful.com"))
	assert.NotEqual(t, "", r.Check("ana boxful@x.com"))
	assert.Equal(t, "", r.Check(""), "pattern does not apply to empty values")
}

func TestPhone(t *testing.T) {
	r := Phone()
	assert.Equal(t, "", r.Check("+503 7123 4567"))
	assert.Equal(t, "", r.Check("+502 7123 4567"))
	assert.Equal(t, "", r.Check("+504 71234567"))
	assert.Equal(t, "El teléfono debe tener al menos 8 dígitos con código", r.Check("+503 712"))
	assert.Equal(t, "Ingresa un número de teléfono válido", r.Check("+503 6123 4567"))
	assert.Equal(t, "Ingresa un número de teléfono válido", r.Check("+1 7123 456789"))
}

func TestName(t *testing.T) {
	r := Name("nombre")
	assert.Equal(t, "", r.Check("José Ñúñez"))
	assert.Equal(t, "El nombre debe tener al menos 2 caracteres", r.Check("A"))
	assert.Equal(t, "El nombre solo puede contener letras", r.Check("R2D2"))
	assert.Equal(t, "El nombre solo puede contener letras", r.Check("Anne-Marie"))
}

func TestPassword(t *testing.T) {
	assert.Equal(t, "La contraseña debe tener al menos 8 caracteres", Password().Check("1234567"))
	assert.Equal(t, "", Password().Check("12345678"))
	assert.Equal(t, "La contraseña es requerida", LoginPassword().Check(""))
}

func TestConfirmPassword(t *testing.T) {
	r := ConfirmPassword("Secret123")
	assert.Equal(t, "", r.Check("Secret123"))
	for _, v := range []string{"secret123", "Secret123 ", " Secret123", "Secret12", ""} {
		assert.Equal(t, "Las contraseñas no coinciden", r.Check(v), "value %q", v)
	}
}

func TestBirthDate(t *testing.T) {
	fixClock(t, date(2026, time.June, 15))
	r := BirthDate()

	thirteen := date(2013, time.June, 1)
	assert.Equal(t, "", r.Check(&thirteen), "age 13 with non-negative month difference")

	thirteenSameMonthLater := date(2013, time.June, 30)
	assert.Equal(t, "", r.Check(&thirteenSameMonthLater), "month difference is zero")

	thirteenLaterMonth := date(2013, time.July, 1)
	assert.Equal(t, "Debes ser mayor de 13 años", r.Check(&thirteenLaterMonth))

	twelve := date(2014, time.January, 1)
	assert.Equal(t, "Debes ser mayor de 13 años", r.Check(&twelve))

	old := date(1900, time.January, 1)
	assert.Equal(t, "Fecha de nacimiento no válida", r.Check(&old))

	future := date(2027, time.January, 1)
	assert.NotEqual(t, "", r.Check(&future))

	assert.Equal(t, "Debes seleccionar una fecha de nacimiento válida", r.Check((*time.Time)(nil)))
	assert.Equal(t, "", r.Check(thirteen), "plain time values are accepted")
}

func TestDateRangeRules(t *testing.T) {
	fixClock(t, date(2026, time.June, 15))

	past := date(2026, time.June, 1)
	later := date(2026, time.June, 10)
	future := date(2026, time.July, 1)

	assert.Equal(t, "", StartDate().Check(&past))
	assert.Equal(t, "La fecha de inicio no puede ser futura", StartDate().Check(&future))
	assert.Equal(t, "La fecha de inicio es requerida", StartDate().Check((*time.Time)(nil)))

	assert.Equal(t, "", EndDate(&past).Check(&later))
	assert.Equal(t, "La fecha de fin debe ser posterior a la fecha de inicio", EndDate(&later).Check(&past))
	assert.Equal(t, "La fecha de fin no puede ser futura", EndDate(nil).Check(&future))

	errs := CheckRange(domain.DateRange{Start: &later, End: &past})
	require.Len(t, errs, 1)
	assert.Equal(t, "end", errs[0].Field)

	assert.Empty(t, CheckRange(domain.DateRange{}))
	assert.Empty(t, CheckRange(domain.DateRange{End: &past}))
}

func TestMergeOverwritesSameKind(t *testing.T) {
	r := Merge(Required("first"), MinLength(3, "short"), Required("second"), MinLength(5))
	assert.Equal(t, "second", r.Check(""))
	assert.Equal(t, "Debe tener al menos 5 caracteres", r.Check("abcd"))

	combined := Merge(Required("El nombre es requerido"), Name("nombre"))
	require.NotNil(t, combined.Required)
	require.NotNil(t, combined.Pattern)
	require.NotNil(t, combined.MinLength)
}

func TestMaxLength(t *testing.T) {
	assert.Equal(t, "No puede tener más de 3 caracteres", MaxLength(3).Check("ñañá"))
	assert.Equal(t, "", MaxLength(4).Check("ñañá"))
}
