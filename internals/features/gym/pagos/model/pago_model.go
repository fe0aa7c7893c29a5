package model

import (
	"time"

	"github.com/google/uuid"
)

type PagoModel struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID          uuid.UUID  `json:"cliente_id" gorm:"type:uuid;not null;index"`
	Monto              float64    `json:"monto" gorm:"type:numeric(12,2);not null"`
	FechaPago          time.Time  `json:"fecha_pago" gorm:"type:date;not null"`
	MesCorrespondiente string     `json:"mes_correspondiente" gorm:"type:varchar(7);not null;index"` // YYYY-MM
	MetodoPago         *string    `json:"metodo_pago,omitempty" gorm:"type:varchar(30)"`
	Comprobante        *string    `json:"comprobante,omitempty" gorm:"type:varchar(120)"`
	Notas              *string    `json:"notas,omitempty" gorm:"type:text"`
	CreadoPor          *uuid.UUID `json:"creado_por,omitempty" gorm:"type:uuid"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (PagoModel) TableName() string {
	return "pagos"
}
