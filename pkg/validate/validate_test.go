package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-pos-api/pkg/validate"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"admin@company.com", "luigi.corpuz@company.com", "a+b@x.co"}
	for _, e := range valid {
		assert.True(t, validate.ValidEmail(e), "%s debe ser válido", e)
	}

	invalid := []string{"", "sin-arroba", "a@b", "a@b.", "@dominio.com", "a b@x.com"}
	for _, e := range invalid {
		assert.False(t, validate.ValidEmail(e), "%s debe ser inválido", e)
	}
}

func TestValidUsername(t *testing.T) {
	assert.True(t, validate.ValidUsername("salesman"))
	assert.True(t, validate.ValidUsername("abc"))
	assert.True(t, validate.ValidUsername("User123"))

	// Fuera de rango o con caracteres no alfanuméricos.
	assert.False(t, validate.ValidUsername("ab"))
	assert.False(t, validate.ValidUsername("este_nombre_es_demasiado_largo"))
	assert.False(t, validate.ValidUsername("con espacio"))
	assert.False(t, validate.ValidUsername("con-guion"))
	assert.False(t, validate.ValidUsername(""))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, validate.ValidPassword("123456"))
	assert.True(t, validate.ValidPassword("admin123"))
	assert.False(t, validate.ValidPassword("12345"))
	assert.False(t, validate.ValidPassword(""))
}

// Sanitize elimina caracteres peligrosos y recorta espacios.
func TestSanitize(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", validate.Sanitize(`<script>alert(1)</script>`))
	assert.Equal(t, "Coca Cola", validate.Sanitize("  Coca Cola  "))
	assert.Equal(t, "OReilly", validate.Sanitize("O'Reilly"))
	assert.Equal(t, "ATT", validate.Sanitize("AT&T"))
}

func TestSanitizeFields(t *testing.T) {
	fields := map[string]any{
		"name":  "  <b>Acme</b> ",
		"stock": 5,
	}
	validate.SanitizeFields(fields)

	assert.Equal(t, "bAcme/b", fields["name"])
	assert.Equal(t, 5, fields["stock"], "los valores no string quedan intactos")
}
