package catalogo

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/sistemas/model"
)

type SistemaSeed struct {
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

func SeedSistemasFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo de sistemas:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}

	var inputs []SistemaSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ No se pudo decodificar el JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.SistemaModel
		if err := db.Where("nombre = ?", data.Nombre).First(&existing).Error; err == nil {
			log.Printf("ℹ️ El sistema '%s' ya existe, se omite.", data.Nombre)
			continue
		}

		sistema := model.SistemaModel{
			Nombre:      data.Nombre,
			Descripcion: data.Descripcion,
			Activo:      true,
		}

		if err := db.Create(&sistema).Error; err != nil {
			log.Printf("❌ No se pudo insertar el sistema '%s': %v", data.Nombre, err)
		} else {
			log.Printf("✅ Sistema '%s' insertado", data.Nombre)
		}
	}
}
