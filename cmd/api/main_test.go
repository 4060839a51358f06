package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camivargas/cafestock-api/pkg/logger"
)

// Sin swagger.json en disco el arranque no debe caerse: el middleware de
// swagger lee el archivo al registrarse y entra en pánico si falta.
func TestRegisterSwagger_SinArchivoNoEntraEnPanico(t *testing.T) {
	app := fiber.New()

	assert.NotPanics(t, func() {
		registerSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), logger.NewNop())
	})

	// La UI no quedó montada; el resto de la app sigue operativa.
	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegisterSwagger_ConArchivoSirveLaUI(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "swagger.json")
	doc := `{"swagger":"2.0","info":{"title":"CaféStock API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(file, []byte(doc), 0o644))

	app := fiber.New()
	registerSwagger(app, file, logger.NewNop())

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// El documento versionado en docs/ debe existir: es el que sirve el binario
// en producción.
func TestSwaggerJSONVersionadoExiste(t *testing.T) {
	_, err := os.Stat(filepath.Join("..", "..", "docs", "swagger.json"))
	assert.NoError(t, err)
}
