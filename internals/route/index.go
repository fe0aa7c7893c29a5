package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "gestiongym_backend/internals/features/users/auth/route"

	clienteRoute "gestiongym_backend/internals/features/gym/clientes/route"
	entrenadorRoute "gestiongym_backend/internals/features/gym/entrenadores/route"
	pagoRoute "gestiongym_backend/internals/features/gym/pagos/route"
	planRoute "gestiongym_backend/internals/features/gym/planes/route"
	sistemaRoute "gestiongym_backend/internals/features/gym/sistemas/route"

	authMiddleware "gestiongym_backend/internals/middlewares/auth"
)

// SetupRoutes monta todas las rutas de la API.
// /api/auth es público (con sus propios rate limiters);
// todo lo demás vive bajo /api/gym detrás del middleware de auth.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	gym := app.Group("/api/gym", authMiddleware.AuthMiddleware(db))

	clienteRoute.ClienteRoutes(gym, db)
	entrenadorRoute.EntrenadorRoutes(gym, db)
	pagoRoute.PagoRoutes(gym, db)
	planRoute.PlanRoutes(gym, db)
	sistemaRoute.SistemaRoutes(gym, db)
}
