package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clienteModel "gestiongym_backend/internals/features/gym/clientes/model"
	"gestiongym_backend/internals/features/gym/entrenadores/dto"
	"gestiongym_backend/internals/features/gym/entrenadores/model"
	"gestiongym_backend/internals/features/gym/entrenadores/service"
	helper "gestiongym_backend/internals/helpers"
)

type EntrenadorController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEntrenadorController(db *gorm.DB) *EntrenadorController {
	return &EntrenadorController{
		DB:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (ctrl *EntrenadorController) listQuery(c *fiber.Ctx) *gorm.DB {
	q := ctrl.DB.WithContext(c.Context()).Table("entrenadores")

	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("entrenadores.activo = ?", true)
	}
	if term := c.Query("q"); term != "" {
		like := "%" + term + "%"
		q = q.Where("entrenadores.nombre ILIKE ? OR entrenadores.apellido ILIKE ?", like, like)
	}
	return q
}

/* ============================================
   GET /api/gym/entrenadores
   ?q= &incluir_inactivos= &page= &per_page=
   ============================================ */
func (ctrl *EntrenadorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.listQuery(c).Count(&total).Error; err != nil {
		log.Println("[ERROR] No se pudo contar entrenadores:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los entrenadores")
	}

	var rows []model.EntrenadorModel
	if err := ctrl.listQuery(c).
		Order("entrenadores.nombre ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener entrenadores:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los entrenadores")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	pagination.Count = len(rows)
	return helper.JsonList(c, "Entrenadores encontrados", rows, &pagination)
}

/* ============================================
   GET /api/gym/entrenadores/con-clientes
   Conteo de clientes activos por entrenador en una sola query
   agrupada (nada de un COUNT por entrenador), más la comisión
   estimada del mes.
   ============================================ */
func (ctrl *EntrenadorController) ConClientes(c *fiber.Ctx) error {
	var rows []dto.EntrenadorConClientes
	if err := ctrl.DB.WithContext(c.Context()).
		Table("entrenadores").
		Select(`entrenadores.*, COUNT(cl.id) AS clientes_activos`).
		Joins("LEFT JOIN clientes cl ON cl.entrenador_id = entrenadores.id AND cl.activo = TRUE").
		Where("entrenadores.activo = ?", true).
		Group("entrenadores.id").
		Order("entrenadores.nombre ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] No se pudo obtener entrenadores con clientes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los entrenadores")
	}

	for i := range rows {
		rows[i].ComisionEstimada = service.EstimarComision(rows[i].ClientesActivos, rows[i].ComisionPorcentaje)
	}

	return helper.JsonOK(c, "Entrenadores con clientes", rows)
}

/* ============================================
   GET /api/gym/entrenadores/:id
   Incluye sus clientes activos.
   ============================================ */
func (ctrl *EntrenadorController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de entrenador inválido")
	}

	db := ctrl.DB.WithContext(c.Context())

	var entrenador model.EntrenadorModel
	if err := db.First(&entrenador, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Entrenador no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el entrenador")
	}

	var clientes []clienteModel.ClienteModel
	if err := db.Where("entrenador_id = ? AND activo = ?", entrenador.ID, true).
		Order("nombre ASC").
		Find(&clientes).Error; err != nil {
		log.Printf("[WARN] No se pudieron obtener los clientes del entrenador %s: %v", entrenador.ID, err)
		clientes = []clienteModel.ClienteModel{}
	}

	return helper.JsonOK(c, "Entrenador encontrado", fiber.Map{
		"entrenador":        entrenador,
		"clientes":          clientes,
		"clientes_activos":  len(clientes),
		"comision_estimada": service.EstimarComision(int64(len(clientes)), entrenador.ComisionPorcentaje),
	})
}

/* ============================================
   POST /api/gym/entrenadores
   ============================================ */
func (ctrl *EntrenadorController) Create(c *fiber.Ctx) error {
	var body dto.CreateEntrenadorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	entrenador := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&entrenador).Error; err != nil {
		log.Println("[ERROR] No se pudo crear el entrenador:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el entrenador")
	}

	return helper.JsonCreated(c, "Entrenador creado", entrenador)
}

/* ============================================
   PATCH /api/gym/entrenadores/:id
   ============================================ */
func (ctrl *EntrenadorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de entrenador inválido")
	}

	var body dto.UpdateEntrenadorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var entrenador model.EntrenadorModel
	if err := ctrl.DB.WithContext(c.Context()).First(&entrenador, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Entrenador no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el entrenador")
	}

	body.ApplyPatch(&entrenador)
	if err := ctrl.DB.WithContext(c.Context()).Save(&entrenador).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el entrenador:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el entrenador")
	}

	return helper.JsonUpdated(c, "Entrenador actualizado", entrenador)
}

/* ============================================
   POST /api/gym/entrenadores/:id/imagen
   Sube la foto a Supabase Storage y guarda la URL pública.
   ============================================ */
func (ctrl *EntrenadorController) UploadImagen(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de entrenador inválido")
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo 'imagen'")
	}

	url, err := helper.UploadImageToSupabase("entrenadores", fileHeader)
	if err != nil {
		log.Println("[ERROR] No se pudo subir la imagen:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo subir la imagen")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.EntrenadorModel{}).
		Where("id = ?", id).
		Update("imagen_url", url)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar la imagen")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrenador no encontrado")
	}

	return helper.JsonUpdated(c, "Imagen actualizada", fiber.Map{"id": id, "imagen_url": url})
}

/* ============================================
   DELETE /api/gym/entrenadores/:id
   Soft delete. Los clientes conservan su entrenador_id.
   ============================================ */
func (ctrl *EntrenadorController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de entrenador inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.EntrenadorModel{}).
		Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		log.Println("[ERROR] No se pudo eliminar el entrenador:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el entrenador")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrenador no encontrado")
	}

	return helper.JsonDeleted(c, "Entrenador marcado como inactivo", fiber.Map{"id": id})
}
