package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PlanModel struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre      string         `json:"nombre" gorm:"type:varchar(80);not null;uniqueIndex"`
	Descripcion *string        `json:"descripcion,omitempty" gorm:"type:text"`
	Precio      float64        `json:"precio" gorm:"type:numeric(12,2);not null"`
	Beneficios  pq.StringArray `json:"beneficios" gorm:"type:text[]"`
	Activo      bool           `json:"activo" gorm:"not null;default:true"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PlanModel) TableName() string {
	return "planes"
}
