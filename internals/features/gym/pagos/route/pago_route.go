package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/pagos/controller"
)

func PagoRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPagoController(db)

	pagos := api.Group("/pagos")
	pagos.Get("/", ctrl.List)
	pagos.Get("/stats", ctrl.Stats)
	pagos.Get("/:id", ctrl.GetByID)
	pagos.Post("/", ctrl.Create)
	pagos.Patch("/:id", ctrl.Update)
	pagos.Delete("/:id", ctrl.Delete)
}
