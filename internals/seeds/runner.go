package seeds

import (
	"gorm.io/gorm"

	catalogo "gestiongym_backend/internals/seeds/catalogo"
	users "gestiongym_backend/internals/seeds/users"
)

// RunAllSeeds carga los datos base: usuario admin y catálogos de
// planes y sistemas. Cada seeder es idempotente (omite lo existente).
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	catalogo.SeedPlanesFromJSON(db, "internals/seeds/catalogo/data_planes.json")
	catalogo.SeedSistemasFromJSON(db, "internals/seeds/catalogo/data_sistemas.json")
}
