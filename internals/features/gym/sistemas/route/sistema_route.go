package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/sistemas/controller"
)

func SistemaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSistemaController(db)

	sistemas := api.Group("/sistemas")
	sistemas.Get("/", ctrl.List)
	sistemas.Get("/:id", ctrl.GetByID)
	sistemas.Post("/", ctrl.Create)
	sistemas.Patch("/:id", ctrl.Update)
	sistemas.Delete("/:id", ctrl.Delete)
}
