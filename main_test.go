package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOpenDatabase_UnsupportedDriver(t *testing.T) {
	db, err := OpenDatabase("oracle", "dsn")
	assert.Nil(t, db)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestNewApp_HealthEndpoint(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := OpenDatabase("sqlite", dsn)
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))

	app := NewApp(db, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestNewApp_RoutesRegistered(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := OpenDatabase("sqlite", dsn)
	assert.NoError(t, err)
	assert.NoError(t, Migrate(db))

	app := NewApp(db, nil)

	for _, path := range []string{
		"/clientes", "/produtos", "/compras",
		"/vendas/produto", "/vendas/cliente", "/relatorio/geral",
		"/exportar/compras/excel", "/exportar/compras/pdf",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)
		resp.Body.Close()
	}
}
