package model

import (
	"time"

	"github.com/google/uuid"
)

// SistemaModel es el sistema de entrenamiento (pesas, crossfit, mixto...).
type SistemaModel struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string    `json:"nombre" gorm:"type:varchar(80);not null;uniqueIndex"`
	Descripcion *string   `json:"descripcion,omitempty" gorm:"type:text"`
	Activo      bool      `json:"activo" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (SistemaModel) TableName() string {
	return "sistemas"
}
