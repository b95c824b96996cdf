package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/natura-backend/internal/config"
	"github.com/javajoker/natura-backend/internal/database"
	"github.com/javajoker/natura-backend/internal/models"
)

func useTempDatabase(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "natura.db")
	cfg = &config.Config{
		Database: config.DatabaseConfig{
			Driver:   config.DriverSQLite,
			Path:     path,
			LogLevel: "silent",
		},
	}
	t.Cleanup(func() { cfg = nil })
	return path
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadProductFile(t *testing.T) {
	path := writeFile(t, "products.json", `[{"codigo":"P1","nombre":"Crema","precio":10.5}]`)

	req, err := readProductFile(path)
	require.NoError(t, err)
	require.Len(t, req.Products, 1)
	assert.Equal(t, "P1", req.Products[0].Codigo)
	assert.Equal(t, 10.5, req.Products[0].Precio)

	_, err = readProductFile(writeFile(t, "bad.json", `{"codigo":`))
	assert.Error(t, err)

	_, err = readProductFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestImportProductsCommand(t *testing.T) {
	dbPath := useTempDatabase(t)
	file := writeFile(t, "products.json", `[
		{"codigo":"P1","nombre":"Crema","precio":10.5},
		{"codigo":"P2","nombre":"Jabón","precio":3}
	]`)

	require.NoError(t, runImportProducts(context.Background(), file))

	db, err := database.Initialize(config.DatabaseConfig{Driver: config.DriverSQLite, Path: dbPath, LogLevel: "silent"})
	require.NoError(t, err)
	defer database.Close(db)

	var products []models.Product
	require.NoError(t, db.Order("codigo").Find(&products).Error)
	assert.Equal(t, []models.Product{
		{Codigo: "P1", Nombre: "Crema", Precio: 10.5},
		{Codigo: "P2", Nombre: "Jabón", Precio: 3},
	}, products)
}

func TestMigrateCommandRunsScript(t *testing.T) {
	dbPath := useTempDatabase(t)
	script := writeFile(t, "seed.sql", `INSERT INTO clientes (nombre) VALUES ('Ana');`)

	require.NoError(t, runMigrate(script))

	db, err := database.Initialize(config.DatabaseConfig{Driver: config.DriverSQLite, Path: dbPath, LogLevel: "silent"})
	require.NoError(t, err)
	defer database.Close(db)

	var count int64
	require.NoError(t, db.Model(&models.Client{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
