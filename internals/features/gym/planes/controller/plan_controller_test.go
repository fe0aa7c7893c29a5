package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
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

// El listado de planes ordena por nombre, no por precio.
func TestListOrdenaPorNombre(t *testing.T) {
	db, mock := newMockDB(t)

	app := fiber.New()
	ctrl := NewPlanController(db)
	app.Get("/planes", ctrl.List)

	mock.ExpectQuery(`SELECT \* FROM "planes" WHERE activo = \$1 ORDER BY nombre ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "precio", "activo"}))

	req := httptest.NewRequest("GET", "/planes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
