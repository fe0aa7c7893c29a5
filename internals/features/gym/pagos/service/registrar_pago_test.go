package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gestiongym_backend/internals/features/gym/pagos/dto"
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

func clienteRow(id uuid.UUID, pagoMensual float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "nombre", "apellido", "plan_id", "sistema_id", "pago_mensual", "dia_de_pago", "estado_del_mes", "activo"}).
		AddRow(id, "Juan", "Pérez", uuid.New(), uuid.New(), pagoMensual, 5, "Pendiente", true)
}

func TestRegistrarPagoInsertaYMarcaPagado(t *testing.T) {
	db, mock := newMockDB(t)

	clienteID := uuid.New()
	creadoPor := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1`).
		WithArgs(clienteID, 1).
		WillReturnRows(clienteRow(clienteID, 2000))
	mock.ExpectQuery(`INSERT INTO "pagos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectExec(`UPDATE "clientes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pago, err := RegistrarPago(db, dto.CreatePagoRequest{ClienteID: clienteID}, &creadoPor)
	require.NoError(t, err)

	// sin monto explícito toma la mensualidad del cliente
	assert.Equal(t, 2000.0, pago.Monto)
	assert.Equal(t, clienteID, pago.ClienteID)
	assert.Equal(t, MesActual(), pago.MesCorrespondiente)
	require.NotNil(t, pago.CreadoPor)
	assert.Equal(t, creadoPor, *pago.CreadoPor)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrarPagoRollbackSiFallaElUpdate(t *testing.T) {
	db, mock := newMockDB(t)

	clienteID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1`).
		WithArgs(clienteID, 1).
		WillReturnRows(clienteRow(clienteID, 1500))
	mock.ExpectQuery(`INSERT INTO "pagos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectExec(`UPDATE "clientes" SET`).
		WillReturnError(errors.New("conexión perdida"))
	mock.ExpectRollback()

	_, err := RegistrarPago(db, dto.CreatePagoRequest{ClienteID: clienteID}, nil)
	require.Error(t, err)

	// si el update falla, el insert del pago también se revierte
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrarPagoClienteInexistente(t *testing.T) {
	db, mock := newMockDB(t)

	clienteID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1`).
		WithArgs(clienteID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := RegistrarPago(db, dto.CreatePagoRequest{ClienteID: clienteID}, nil)
	require.Error(t, err)

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrarPagoMontoExplicito(t *testing.T) {
	db, mock := newMockDB(t)

	clienteID := uuid.New()
	monto := 3500.0
	mes := "2026-08"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "clientes" WHERE id = \$1`).
		WithArgs(clienteID, 1).
		WillReturnRows(clienteRow(clienteID, 2000))
	mock.ExpectQuery(`INSERT INTO "pagos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectExec(`UPDATE "clientes" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	pago, err := RegistrarPago(db, dto.CreatePagoRequest{
		ClienteID:          clienteID,
		Monto:              &monto,
		MesCorrespondiente: &mes,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3500.0, pago.Monto)
	assert.Equal(t, "2026-08", pago.MesCorrespondiente)
	assert.NoError(t, mock.ExpectationsWereMet())
}
