package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EntrenadorModel struct {
	ID                 uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre             string         `json:"nombre" gorm:"type:varchar(80);not null"`
	Apellido           string         `json:"apellido" gorm:"type:varchar(80);not null"`
	Email              *string        `json:"email,omitempty" gorm:"type:varchar(120)"`
	Telefono           *string        `json:"telefono,omitempty" gorm:"type:varchar(30)"`
	Especialidades     datatypes.JSON `json:"especialidades,omitempty" gorm:"type:jsonb"` // ["crossfit","fuerza"]
	ComisionPorcentaje float64        `json:"comision_porcentaje" gorm:"type:numeric(5,2);default:0"`
	ImagenURL          *string        `json:"imagen_url,omitempty" gorm:"type:text"`
	Notas              *string        `json:"notas,omitempty" gorm:"type:text"`
	Activo             bool           `json:"activo" gorm:"not null;default:true"`
	CreatedAt          time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (EntrenadorModel) TableName() string {
	return "entrenadores"
}
