package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/clientes/controller"
)

// ClienteRoutes monta el CRUD de clientes bajo el grupo protegido.
func ClienteRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClienteController(db)

	clientes := api.Group("/clientes")
	clientes.Get("/", ctrl.List)
	clientes.Get("/stats", ctrl.Stats)
	clientes.Get("/:id", ctrl.GetByID)
	clientes.Post("/", ctrl.Create)
	clientes.Patch("/:id", ctrl.Update)
	clientes.Patch("/:id/estado", ctrl.UpdateEstado)
	clientes.Delete("/:id", ctrl.Delete)
}
