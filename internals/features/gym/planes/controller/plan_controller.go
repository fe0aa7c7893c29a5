package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/planes/dto"
	"gestiongym_backend/internals/features/gym/planes/model"
	helper "gestiongym_backend/internals/helpers"
)

type PlanController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{
		DB:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

/* ============================================
   GET /api/gym/planes
   ?q= &incluir_inactivos=
   Catálogo chico: sin paginación, orden por nombre.
   ============================================ */
func (ctrl *PlanController) List(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.Context()).Model(&model.PlanModel{})

	if c.Query("incluir_inactivos") != "true" {
		q = q.Where("activo = ?", true)
	}
	if term := c.Query("q"); term != "" {
		q = q.Where("nombre ILIKE ?", "%"+term+"%")
	}

	var planes []model.PlanModel
	if err := q.Order("nombre ASC").Find(&planes).Error; err != nil {
		log.Println("[ERROR] No se pudieron obtener planes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los planes")
	}

	return helper.JsonOK(c, "Planes encontrados", planes)
}

/* ============================================
   GET /api/gym/planes/:id
   ============================================ */
func (ctrl *PlanController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de plan inválido")
	}

	var plan model.PlanModel
	if err := ctrl.DB.WithContext(c.Context()).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el plan")
	}

	return helper.JsonOK(c, "Plan encontrado", plan)
}

/* ============================================
   POST /api/gym/planes
   ============================================ */
func (ctrl *PlanController) Create(c *fiber.Ctx) error {
	var body dto.CreatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	plan := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(&plan).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Ya existe un plan con ese nombre")
		}
		log.Println("[ERROR] No se pudo crear el plan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el plan")
	}

	return helper.JsonCreated(c, "Plan creado", plan)
}

/* ============================================
   PATCH /api/gym/planes/:id
   ============================================ */
func (ctrl *PlanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de plan inválido")
	}

	var body dto.UpdatePlanRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := ctrl.validate.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var plan model.PlanModel
	if err := ctrl.DB.WithContext(c.Context()).First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el plan")
	}

	body.ApplyPatch(&plan)
	if err := ctrl.DB.WithContext(c.Context()).Save(&plan).Error; err != nil {
		log.Println("[ERROR] No se pudo actualizar el plan:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el plan")
	}

	return helper.JsonUpdated(c, "Plan actualizado", plan)
}

/* ============================================
   DELETE /api/gym/planes/:id
   Soft delete: los clientes existentes conservan su plan_id.
   ============================================ */
func (ctrl *PlanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de plan inválido")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.PlanModel{}).
		Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar el plan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Plan no encontrado")
	}

	return helper.JsonDeleted(c, "Plan marcado como inactivo", fiber.Map{"id": id})
}
