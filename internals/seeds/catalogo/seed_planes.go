package catalogo

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"gestiongym_backend/internals/features/gym/planes/model"
)

type PlanSeed struct {
	Nombre      string   `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Precio      float64  `json:"precio"`
	Beneficios  []string `json:"beneficios"`
}

func SeedPlanesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo de planes:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}

	var inputs []PlanSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ No se pudo decodificar el JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.PlanModel
		if err := db.Where("nombre = ?", data.Nombre).First(&existing).Error; err == nil {
			log.Printf("ℹ️ El plan '%s' ya existe, se omite.", data.Nombre)
			continue
		}

		plan := model.PlanModel{
			Nombre:      data.Nombre,
			Descripcion: data.Descripcion,
			Precio:      data.Precio,
			Beneficios:  pq.StringArray(data.Beneficios),
			Activo:      true,
		}

		if err := db.Create(&plan).Error; err != nil {
			log.Printf("❌ No se pudo insertar el plan '%s': %v", data.Nombre, err)
		} else {
			log.Printf("✅ Plan '%s' insertado", data.Nombre)
		}
	}
}
