package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestiongym_backend/internals/constants"
	clienteModel "gestiongym_backend/internals/features/gym/clientes/model"
	"gestiongym_backend/internals/features/gym/pagos/dto"
	"gestiongym_backend/internals/features/gym/pagos/model"
)

// RegistrarPago inserta el pago y marca al cliente como Pagado en una
// sola transacción: o entran ambos cambios o no entra ninguno.
func RegistrarPago(db *gorm.DB, req dto.CreatePagoRequest, creadoPor *uuid.UUID) (model.PagoModel, error) {
	var pago model.PagoModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var cliente clienteModel.ClienteModel
		if err := tx.First(&cliente, "id = ?", req.ClienteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Cliente no encontrado")
			}
			return err
		}

		pago = req.ToModel(cliente.PagoMensual, creadoPor)
		if pago.Monto <= 0 {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "El monto del pago debe ser mayor a cero")
		}

		if err := tx.Create(&pago).Error; err != nil {
			return err
		}

		return tx.Model(&clienteModel.ClienteModel{}).
			Where("id = ?", cliente.ID).
			Update("estado_del_mes", constants.EstadoPagado).Error
	})

	return pago, err
}

// SumMontos suma los montos de una lista de pagos.
func SumMontos(pagos []model.PagoModel) float64 {
	var total float64
	for _, p := range pagos {
		total += p.Monto
	}
	return total
}

// MesActual devuelve el mes en curso en formato YYYY-MM.
func MesActual() string {
	return time.Now().Format("2006-01")
}
