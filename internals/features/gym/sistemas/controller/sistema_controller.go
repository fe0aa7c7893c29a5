package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/sistemas/dto"
	"gestiongym_backend/internals/features/gym/sistemas/model"
	helper "gestiongym_backend/internals/helpers"
)

type SistemaController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewSistemaController(db *gorm.DB) *SistemaController {
	return &SistemaController{
		DB:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

/* ============================================
   GET /api/gym/sistemas
   ?q= &incluir_inactivos=
   ============================================ */
func (ctrl *SistemaController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.SistemaModel{})

	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("activo = ?", true)
	}
	if term := c.Query("q"); term != "" {
		q = q.Where("nombre ILIKE ?", "%"+term+"%")
	}

	var sistemas []model.SistemaModel
	if err := q.Order("nombre ASC").Find(&sistemas).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener sistemas:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los sistemas")
	}

	return helper.JsonOK(c, "Sistemas encontrados", sistemas)
}

/* ============================================
   GET /api/gym/sistemas/:id
   ============================================ */
func (ctrl *SistemaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de sistema inválido")
	}

	var sistema model.SistemaModel
	if err := ctrl.DB.WithContext(c.Context()).First(&sistema, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sistema no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el sistema")
	}

	return helper.JsonOK(c, "Sistema encontrado", sistema)
}

/* ============================================
   POST /api/gym/sistemas
   ============================================ */
func (ctrl *SistemaController) Create(c *fiber.Ctx) error {
	var body dto.CreateSistemaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	sistema := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&sistema).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un sistema con ese nombre")
		}
		log.Println("[ERROR] No se pudo crear el sistema:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el sistema")
	}

	return helper.JsonCreated(c, "Sistema creado", sistema)
}

/* ============================================
   PATCH /api/gym/sistemas/:id
   ============================================ */
func (ctrl *SistemaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de sistema inválido")
	}

	var body dto.UpdateSistemaRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var sistema model.SistemaModel
	if err := ctrl.DB.WithContext(c.Context()).First(&sistema, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sistema no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el sistema")
	}

	body.ApplyPatch(&sistema)
	if err := ctrl.DB.WithContext(c.Context()).Save(&sistema).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el sistema:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el sistema")
	}

	return helper.JsonUpdated(c, "Sistema actualizado", sistema)
}

/* ============================================
   DELETE /api/gym/sistemas/:id
   ============================================ */
func (ctrl *SistemaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de sistema inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.SistemaModel{}).
		Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el sistema")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Sistema no encontrado")
	}

	return helper.JsonDeleted(c, "Sistema marcado como inactivo", fiber.Map{"id": id})
}
