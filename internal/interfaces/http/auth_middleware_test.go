package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/retail-pos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/retail-pos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "cashier1"
	testIssuer    = "retail-pos-test"
	testExpMin    = 60
)

// buildTestApp construye una app Fiber mínima con AuthMiddleware, el guard
// indicado y un handler dummy que devuelve 200 si pasa los middlewares.
func buildTestApp(guard fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{apphttp.AuthMiddleware(testJWTSecret)}
	if guard != nil {
		handlers = append(handlers, guard)
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"ok":   true,
			"role": apphttp.GetRole(c),
		})
	})
	app.Get("/protected", handlers...)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doRequest lanza una petición GET /protected con el header Authorization
// indicado (vacío = sin header) y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — portador del token
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization ni cookie → HTTP 401.
func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildTestApp(nil)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Authentication required")
}

// Token malformado → HTTP 401 Session expired.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(nil)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Session expired")
}

// Token expirado → HTTP 401, sin renovación por actividad.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(nil)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, "admin", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token expirado no debe aceptarse aunque haya actividad")
}

// Token firmado con otro secret → HTTP 401.
func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp(nil)
	tok, err := pkgjwt.Generate("otro-secret-distinto", testUserID, testUsername, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El token también se acepta desde la cookie de sesión, sin header.
func TestAuthMiddleware_CookieDeSesion_Acepta(t *testing.T) {
	app := buildTestApp(nil)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: tokenForRole(t, "user")})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"la cookie de sesión debe valer como portador del token")
}

// AuthMiddleware deja userID, username y role en locals.
func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokenForRole(t, "manager"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, "manager", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireStaff / RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Los tres roles de staff pasan el guard de staff.
func TestRequireStaff_RolesDeStaffPasan(t *testing.T) {
	for _, role := range []string{"admin", "user", "manager"} {
		app := buildTestApp(apphttp.RequireStaff())
		resp := doRequest(t, app, "Bearer "+tokenForRole(t, role))
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"el rol %s es de staff y debe pasar", role)
	}
}

// Un cliente no pasa el guard de staff → HTTP 403.
func TestRequireStaff_ClienteBloqueado(t *testing.T) {
	app := buildTestApp(apphttp.RequireStaff())
	resp := doRequest(t, app, "Bearer "+tokenForRole(t, "customer"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Staff access required")
}

// Solo admin pasa el guard de admin.
func TestRequireAdmin_SoloAdminPasa(t *testing.T) {
	app := buildTestApp(apphttp.RequireAdmin())
	resp := doRequest(t, app, "Bearer "+tokenForRole(t, "admin"))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, role := range []string{"user", "manager", "customer"} {
		app := buildTestApp(apphttp.RequireAdmin())
		resp := doRequest(t, app, "Bearer "+tokenForRole(t, role))
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"el rol %s no debe pasar el guard de admin", role)
		assert.Contains(t, string(body), "Admin access required")
	}
}
