package controller

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func newTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	ctrl := NewClienteController(db)

	app.Get("/clientes", ctrl.List)
	app.Get("/clientes/:id", ctrl.GetByID)
	app.Patch("/clientes/:id/estado", ctrl.UpdateEstado)
	app.Delete("/clientes/:id", ctrl.Delete)
	return app
}

func clienteRow(id uuid.UUID, activo bool, entrenadorID *uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "nombre", "apellido", "plan_id", "sistema_id", "entrenador_id",
		"pago_mensual", "dia_de_pago", "estado_del_mes", "activo",
	}).AddRow(id, "Karla", "Padilla", uuid.New(), uuid.New(), entrenadorID, 2000, 5, "Pendiente", activo)
}

// El listado filtra activos y resuelve la búsqueda con ILIKE en la DB.
func TestListFiltraActivosYBuscaEnLaDB(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "clientes" WHERE clientes\.activo = \$1 AND \(clientes\.nombre ILIKE \$2 OR clientes\.apellido ILIKE \$3 OR clientes\.email ILIKE \$4\)`).
		WithArgs(true, "%juan%", "%juan%", "%juan%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`LEFT JOIN entrenadores e ON e\.id = clientes\.entrenador_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/clientes?q=juan", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// DELETE es soft delete: UPDATE activo=false, nunca un DELETE real.
func TestDeleteEsSoftDelete(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "clientes" SET "activo"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/clientes/"+id.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteClienteInexistente(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "clientes" SET "activo"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/clientes/"+uuid.NewString(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateEstadoRechazaValorInvalido(t *testing.T) {
	db, _ := newMockDB(t)
	app := newTestApp(db)

	body := strings.NewReader(`{"estado":"Cancelado"}`)
	req := httptest.NewRequest("PATCH", "/clientes/"+uuid.NewString()+"/estado", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	// estado fuera de Pagado|Pendiente → 422, nunca toca la DB
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

// El detalle devuelve el cliente aunque esté inactivo (soft delete),
// con activo=false visible en la respuesta.
func TestGetByIDDevuelveClienteInactivo(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(clienteRow(id, false, nil))
	mock.ExpectQuery(`FROM "planes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"nombre"}).AddRow("Premium"))
	mock.ExpectQuery(`FROM "sistemas" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"nombre"}).AddRow("Pesas"))
	mock.ExpectQuery(`FROM "pagos" WHERE cliente_id = \$1 ORDER BY fecha_pago DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "cliente_id", "monto"}).
			AddRow(uuid.New(), id, 15000.00))

	req := httptest.NewRequest("GET", "/clientes/"+id.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"activo":false`)
	assert.Contains(t, string(body), `"total_pagado":15000`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// El fallo del lookup secundario del entrenador se traga: el cliente
// se devuelve igual, sin nombre de entrenador.
func TestGetByIDTragaFalloDelLookupDeEntrenador(t *testing.T) {
	db, mock := newMockDB(t)
	app := newTestApp(db)

	id := uuid.New()
	entrenadorID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1`).
		WithArgs(id, 1).
		WillReturnRows(clienteRow(id, true, &entrenadorID))
	mock.ExpectQuery(`FROM "entrenadores" WHERE id = \$1`).
		WillReturnError(errors.New("timeout"))
	mock.ExpectQuery(`FROM "planes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"nombre"}).AddRow("Premium"))
	mock.ExpectQuery(`FROM "sistemas" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"nombre"}).AddRow("Pesas"))
	mock.ExpectQuery(`FROM "pagos" WHERE cliente_id = \$1 ORDER BY fecha_pago DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	req := httptest.NewRequest("GET", "/clientes/"+id.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"nombre":"Karla"`)
	assert.NotContains(t, string(body), "entrenador_nombre")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteConIDInvalido(t *testing.T) {
	db, _ := newMockDB(t)
	app := newTestApp(db)

	req := httptest.NewRequest("DELETE", "/clientes/no-es-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
