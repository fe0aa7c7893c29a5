package user

import (
	"encoding/json"
	"log"
	"os"

	authHelper "gestiongym_backend/internals/features/users/auth/helper"
	"gestiongym_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Leyendo archivo de usuarios:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ No se pudo leer el JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ No se pudo decodificar el JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ El usuario '%s' ya existe, se omite.", data.Email)
			continue
		}

		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ No se pudo hashear la contraseña de '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			ID:       uuid.New(),
			UserName: data.UserName,
			Email:    data.Email,
			Password: hashedPassword,
			IsActive: true,
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ No se pudo insertar el usuario '%s': %v", data.Email, err)
		} else {
			log.Printf("✅ Usuario '%s' insertado", data.Email)
		}
	}
}
