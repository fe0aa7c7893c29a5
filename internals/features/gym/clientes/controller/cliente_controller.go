package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestiongym_backend/internals/constants"
	"gestiongym_backend/internals/features/gym/clientes/dto"
	"gestiongym_backend/internals/features/gym/clientes/model"
	pagoModel "gestiongym_backend/internals/features/gym/pagos/model"
	pagoService "gestiongym_backend/internals/features/gym/pagos/service"
	helper "gestiongym_backend/internals/helpers"
)

type ClienteController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewClienteController(db *gorm.DB) *ClienteController {
	return &ClienteController{
		DB:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// base query con filtros: solo activos por defecto, búsqueda y filtros
// resueltos en la DB (nada de filtrar colecciones completas en memoria)
func (ctrl *ClienteController) listQuery(c *fiber.Ctx) *gorm.DB {
	q := ctrl.DB.WithContext(c.Context()).
		Table("clientes").
		Where("clientes.activo = ?", true)

	if term := c.Query("q"); term != "" {
		like := "%" + term + "%"
		q = q.Where("clientes.nombre ILIKE ? OR clientes.apellido ILIKE ? OR clientes.email ILIKE ?", like, like, like)
	}
	if estado := c.Query("estado"); estado != "" {
		q = q.Where("clientes.estado_del_mes = ?", estado)
	}
	if entrenadorID := c.Query("entrenador_id"); entrenadorID != "" {
		q = q.Where("clientes.entrenador_id = ?", entrenadorID)
	}
	return q
}

/* ============================================
   GET /api/gym/clientes
   ?q= &estado= &entrenador_id= &page= &per_page=
   ============================================ */
func (ctrl *ClienteController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.listQuery(c).Count(&total).Error; err != nil {
		log.Println("[ERROR] No se pudo contar clientes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los clientes")
	}

	var rows []dto.ClienteResponse
	if err := ctrl.listQuery(c).
		Select(`clientes.*,
			COALESCE(TRIM(CONCAT(e.nombre, ' ', e.apellido)), '') AS entrenador_nombre,
			COALESCE(p.nombre, '')                                AS plan_nombre,
			COALESCE(s.nombre, '')                                AS sistema_nombre`).
		Joins("LEFT JOIN entrenadores e ON e.id = clientes.entrenador_id").
		Joins("LEFT JOIN planes p ON p.id = clientes.plan_id").
		Joins("LEFT JOIN sistemas s ON s.id = clientes.sistema_id").
		Order("clientes.nombre ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener clientes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los clientes")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(rows)
	return helper.JsonList(c, "Clientes encontrados", rows, &pagination)
}

/* ============================================
   GET /api/gym/clientes/stats
   ============================================ */
func (ctrl *ClienteController) Stats(c *fiber.Ctx) error {
	db := ctrl.DB.WithContext(c.Context())

	var total, pagados int64
	if err := db.Model(&model.ClienteModel{}).Where("activo = ?", true).Count(&total).Error; err != nil {
		log.Println("[ERROR] stats clientes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas")
	}
	if err := db.Model(&model.ClienteModel{}).
		Where("activo = ? AND estado_del_mes = ?", true, constants.EstadoPagado).
		Count(&pagados).Error; err != nil {
		log.Println("[ERROR] stats clientes pagados:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las estadísticas")
	}

	porcentaje := 0
	if total > 0 {
		porcentaje = int((pagados*100 + total/2) / total) // round
	}

	return helper.JsonOK(c, "Estadísticas de clientes", fiber.Map{
		"total_clientes":      total,
		"clientes_pagados":    pagados,
		"clientes_pendientes": total - pagados,
		"porcentaje_pagados":  porcentaje,
	})
}

/* ============================================
   GET /api/gym/clientes/:id
   Devuelve el cliente (aunque esté inactivo), sus pagos y
   el total pagado. La resolución del nombre del entrenador
   es un lookup secundario: si falla, se loguea y el cliente
   se devuelve igual sin ese dato.
   ============================================ */
func (ctrl *ClienteController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de cliente inválido")
	}

	db := ctrl.DB.WithContext(c.Context())

	var cliente model.ClienteModel
	if err := db.First(&cliente, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el cliente")
	}

	resp := dto.ClienteResponse{ClienteModel: cliente}

	// lookup secundario del entrenador — el fallo no tumba la página
	if cliente.EntrenadorID != nil {
		var ent struct {
			Nombre   string
			Apellido string
		}
		if err := db.Table("entrenadores").
			Select("nombre", "apellido").
			Where("id = ?", *cliente.EntrenadorID).
			Take(&ent).Error; err != nil {
			log.Printf("[WARN] No se pudo resolver el entrenador %s del cliente %s: %v", cliente.EntrenadorID, cliente.ID, err)
		} else {
			resp.EntrenadorNombre = ent.Nombre + " " + ent.Apellido
		}
	}

	// nombres de plan / sistema (mismo trato: degradan a vacío)
	var nombre string
	if err := db.Table("planes").Select("nombre").Where("id = ?", cliente.PlanID).Take(&nombre).Error; err == nil {
		resp.PlanNombre = nombre
	}
	if err := db.Table("sistemas").Select("nombre").Where("id = ?", cliente.SistemaID).Take(&nombre).Error; err == nil {
		resp.SistemaNombre = nombre
	}

	var pagos []pagoModel.PagoModel
	if err := db.Where("cliente_id = ?", cliente.ID).
		Order("fecha_pago DESC").
		Find(&pagos).Error; err != nil {
		log.Printf("[WARN] No se pudieron obtener los pagos del cliente %s: %v", cliente.ID, err)
		pagos = []pagoModel.PagoModel{}
	}

	return helper.JsonOK(c, "Cliente encontrado", fiber.Map{
		"cliente":     resp,
		"pagos":       pagos,
		"total_pagado": pagoService.SumMontos(pagos),
	})
}

/* ============================================
   POST /api/gym/clientes
   ============================================ */
func (ctrl *ClienteController) Create(c *fiber.Ctx) error {
	var body dto.CreateClienteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	cliente := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&cliente).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el cliente:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el cliente")
	}

	return helper.JsonCreated(c, "Cliente creado", cliente)
}

/* ============================================
   PATCH /api/gym/clientes/:id
   ============================================ */
func (ctrl *ClienteController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de cliente inválido")
	}

	var body dto.UpdateClienteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var cliente model.ClienteModel
	if err := ctrl.DB.WithContext(c.Context()).First(&cliente, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el cliente")
	}

	body.ApplyPatch(&cliente)
	if err := ctrl.DB.WithContext(c.Context()).Save(&cliente).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el cliente:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el cliente")
	}

	return helper.JsonUpdated(c, "Cliente actualizado", cliente)
}

/* ============================================
   PATCH /api/gym/clientes/:id/estado
   Solo cambia estado_del_mes (Pagado | Pendiente)
   ============================================ */
func (ctrl *ClienteController) UpdateEstado(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de cliente inválido")
	}

	var body struct {
		Estado string `json:"estado"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if !constants.EsEstadoValido(body.Estado) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Estado inválido: debe ser Pagado o Pendiente")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.ClienteModel{}).
		Where("id = ?", id).
		Update("estado_del_mes", body.Estado)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el estado")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
	}

	return helper.JsonUpdated(c, "Estado actualizado", fiber.Map{
		"id":             id,
		"estado_del_mes": body.Estado,
	})
}

/* ============================================
   DELETE /api/gym/clientes/:id
   Soft delete: activo=false. No cambia la relación con el
   entrenador ni borra los pagos.
   ============================================ */
func (ctrl *ClienteController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de cliente inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.ClienteModel{}).
		Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		log.Println("[ERROR] No se pudo eliminar el cliente:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el cliente")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cliente no encontrado")
	}

	return helper.JsonDeleted(c, "Cliente marcado como inactivo", fiber.Map{"id": id})
}
