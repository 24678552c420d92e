package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-pos-api/pkg/jwt"
)

const secret = "secret-de-prueba"

// Generar y parsear un token debe devolver los mismos claims.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(secret, "u-1", "salesman", "user", "retail-pos", 30)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, username, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "salesman", username)
	assert.Equal(t, "user", role)
}

// Un token expirado no se acepta.
func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "u-1", "salesman", "user", "retail-pos", -5)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err, "un token vencido debe rechazarse")
}

// Un token firmado con otro secret no se acepta.
func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := jwt.Generate(secret, "u-1", "salesman", "user", "retail-pos", 30)
	require.NoError(t, err)

	_, _, _, err = jwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}
