package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/planes/controller"
)

func PlanRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPlanController(db)

	planes := api.Group("/planes")
	planes.Get("/", ctrl.List)
	planes.Get("/:id", ctrl.GetByID)
	planes.Post("/", ctrl.Create)
	planes.Patch("/:id", ctrl.Update)
	planes.Delete("/:id", ctrl.Delete)
}
