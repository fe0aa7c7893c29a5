package controller

import (
	"fmt"
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

// Un método de pago fuera del catálogo se rechaza antes de tocar la DB.
func TestCreateRechazaMetodoDePagoInvalido(t *testing.T) {
	db, mock := newMockDB(t)

	app := fiber.New()
	ctrl := NewPagoController(db)
	app.Post("/pagos", ctrl.Create)

	body := strings.NewReader(fmt.Sprintf(
		`{"cliente_id":%q,"metodo_pago":"Cheque"}`, uuid.NewString()))
	req := httptest.NewRequest("POST", "/pagos", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAceptaMetodoDelCatalogo(t *testing.T) {
	db, mock := newMockDB(t)

	app := fiber.New()
	ctrl := NewPagoController(db)
	app.Post("/pagos", ctrl.Create)

	clienteID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "apellido", "pago_mensual", "estado_del_mes", "activo"}).
			AddRow(clienteID, "Juan", "Pérez", 2000, "Pendiente", true))
	mock.ExpectQuery(`INSERT INTO "pagos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectExec(`UPDATE "clientes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := strings.NewReader(fmt.Sprintf(
		`{"cliente_id":%q,"metodo_pago":"Efectivo"}`, clienteID))
	req := httptest.NewRequest("POST", "/pagos", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
