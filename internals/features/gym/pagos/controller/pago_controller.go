package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestiongym_backend/internals/constants"
	"gestiongym_backend/internals/features/gym/pagos/dto"
	"gestiongym_backend/internals/features/gym/pagos/model"
	"gestiongym_backend/internals/features/gym/pagos/service"
	helper "gestiongym_backend/internals/helpers"
	authHelper "gestiongym_backend/internals/helpers/auth"
)

type PagoController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewPagoController(db *gorm.DB) *PagoController {
	return &PagoController{
		DB:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (ctrl *PagoController) listQuery(c *fiber.Ctx) *gorm.DB {
	q := ctrl.DB.WithContext(c.Context()).Table("pagos")

	if clienteID := c.Query("cliente_id"); clienteID != "" {
		q = q.Where("pagos.cliente_id = ?", clienteID)
	}
	if mes := c.Query("mes"); mes != "" {
		q = q.Where("pagos.mes_correspondiente = ?", mes)
	}
	return q
}

/* ============================================
   GET /api/gym/pagos
   ?cliente_id= &mes= &page= &per_page=
   Más recientes primero.
   ============================================ */
func (ctrl *PagoController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.listQuery(c).Count(&total).Error; err != nil {
		log.Println("[ERROR] No se pudo contar pagos:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los pagos")
	}

	var rows []dto.PagoResponse
	if err := ctrl.listQuery(c).
		Select(`pagos.*,
			COALESCE(TRIM(CONCAT(cl.nombre, ' ', cl.apellido)), '') AS cliente_nombre`).
		Joins("LEFT JOIN clientes cl ON cl.id = pagos.cliente_id").
		Order("pagos.fecha_pago DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener pagos:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los pagos")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(rows)
	return helper.JsonList(c, "Pagos encontrados", rows, &pagination)
}

/* ============================================
   GET /api/gym/pagos/stats
   Total recaudado en el mes en curso y en el día de hoy.
   ============================================ */
func (ctrl *PagoController) Stats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())
	hoy := time.Now().Format("2006-01-02")

	var totalMes, totalHoy float64
	var cantidadMes int64

	if err := db.Model(&model.PagoModel{}).
		Where("mes_correspondiente = ?", service.MesActual()).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&totalMes).Error; err != nil {
		log.Println("[ERROR] stats pagos mes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas")
	}
	if err := db.Model(&model.PagoModel{}).
		Where("mes_correspondiente = ?", service.MesActual()).
		Count(&cantidadMes).Error; err != nil {
		log.Println("[ERROR] stats pagos cantidad:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas")
	}
	if err := db.Model(&model.PagoModel{}).
		Where("fecha_pago = ?", hoy).
		Select("COALESCE(SUM(monto), 0)").
		Scan(&totalHoy).Error; err != nil {
		log.Println("[ERROR] stats pagos hoy:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas")
	}

	return helper.JsonOK(c, "Estadísticas de pagos", fiber.Map{
		"mes":          service.MesActual(),
		"total_mes":    totalMes,
		"cantidad_mes": cantidadMes,
		"total_hoy":    totalHoy,
	})
}

/* ============================================
   GET /api/gym/pagos/:id
   ============================================ */
func (ctrl *PagoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de pago inválido")
	}

	var pago model.PagoModel
	if err := ctrl.DB.WithContext(c.Context()).First(&pago, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pago no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el pago")
	}

	return helper.JsonOK(c, "Pago encontrado", pago)
}

/* ============================================
   POST /api/gym/pagos
   Registro de pago: inserta el pago y marca al cliente como
   Pagado dentro de la misma transacción.
   ============================================ */
func (ctrl *PagoController) Create(c *fiber.Ctx) error {
	var body dto.CreatePagoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if body.MetodoPago != nil && !constants.EsMetodoValido(*body.MetodoPago) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Método de pago inválido")
	}

	var creadoPor *uuid.UUID
	if userID, err := authHelper.GetUserIDFromToken(c); err == nil {
		creadoPor = &userID
	}

	pago, err := service.RegistrarPago(ctrl.DB.WithContext(c.Context()), body, creadoPor)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Println("[ERROR] No se pudo registrar el pago:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar el pago")
	}

	log.Printf("✅ Pago registrado: cliente=%s monto=%.2f mes=%s", pago.ClienteID, pago.Monto, pago.MesCorrespondiente)
	return helper.JsonCreated(c, "Pago registrado", pago)
}

/* ============================================
   PATCH /api/gym/pagos/:id
   ============================================ */
func (ctrl *PagoController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de pago inválido")
	}

	var body dto.UpdatePagoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if body.MetodoPago != nil && !constants.EsMetodoValido(*body.MetodoPago) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Método de pago inválido")
	}

	var pago model.PagoModel
	if err := ctrl.DB.WithContext(c.Context()).First(&pago, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pago no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el pago")
	}

	body.ApplyPatch(&pago)
	if err := ctrl.DB.WithContext(c.Context()).Save(&pago).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el pago:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el pago")
	}

	return helper.JsonUpdated(c, "Pago actualizado", pago)
}

/* ============================================
   DELETE /api/gym/pagos/:id
   Borrado real: un pago mal cargado no debe quedar sumando.
   No recalcula el estado_del_mes del cliente.
   ============================================ */
func (ctrl *PagoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de pago inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.PagoModel{}, "id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] No se pudo eliminar el pago:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el pago")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pago no encontrado")
	}

	return helper.JsonDeleted(c, "Pago eliminado", fiber.Map{"id": id})
}
