package http

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// pageFiles mapea cada ruta de página a su archivo estático dentro del
// directorio web configurado.
var pageFiles = map[string]string{
	"/login":            "loginPage.html",
	"/register":         "registerPage.html",
	"/dashboard":        "dashboard.html",
	"/make-sale":        "make_sale.html",
	"/inventory":        "inventory.html",
	"/sales":            "sales.html",
	"/customers":        "customers.html",
	"/suppliers":        "suppliers.html",
	"/categories":       "categories.html",
	"/staff":            "staff.html",
	"/statistics":       "statistics.html",
	"/create_staff":     "create_staff.html",
	"/customer_profile": "customer_profile.html",
}

// RegisterPages sirve las páginas estáticas del frontend desde webDir. Con
// webDir vacío el servidor queda como API pura y no registra ninguna página.
// El control de acceso fino lo hace la API: las páginas son solo cascarones
// estáticos que consultan /api con el token.
func RegisterPages(app *fiber.App, webDir string) {
	if webDir == "" {
		return
	}
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusFound)
	})
	for route, file := range pageFiles {
		app.Get(route, pageHandler(filepath.Join(webDir, file)))
	}
	app.Static("/static", filepath.Join(webDir, "static"))
}

func pageHandler(path string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendFile(path)
	}
}
