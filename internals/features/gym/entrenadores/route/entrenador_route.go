package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/entrenadores/controller"
)

func EntrenadorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEntrenadorController(db)

	entrenadores := api.Group("/entrenadores")
	entrenadores.Get("/", ctrl.List)
	entrenadores.Get("/con-clientes", ctrl.ConClientes)
	entrenadores.Get("/:id", ctrl.GetByID)
	entrenadores.Post("/", ctrl.Create)
	entrenadores.Post("/:id/imagen", ctrl.UploadImagen)
	entrenadores.Patch("/:id", ctrl.Update)
	entrenadores.Delete("/:id", ctrl.Delete)
}
