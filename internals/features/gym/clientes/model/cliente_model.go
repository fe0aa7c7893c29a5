// internals/features/gym/clientes/model/cliente_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   MODEL: clientes

   plan_id / sistema_id / entrenador_id son FKs reales; el
   nombre visible se resuelve al leer (LEFT JOIN), nunca se
   guarda como texto en el cliente.
   ========================================================= */

type ClienteModel struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Identidad
	Nombre   string `gorm:"size:100;not null;index" json:"nombre"`
	Apellido string `gorm:"size:100;not null" json:"apellido"`

	// Contacto
	Email           *string    `gorm:"size:255" json:"email,omitempty"`
	Telefono        *string    `gorm:"size:30" json:"telefono,omitempty"`
	Direccion       *string    `gorm:"size:255" json:"direccion,omitempty"`
	FechaNacimiento *time.Time `gorm:"type:date" json:"fecha_nacimiento,omitempty"`

	// Membresía
	FechaInscripcion time.Time  `gorm:"type:date;not null;default:CURRENT_DATE" json:"fecha_inscripcion"`
	PlanID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"plan_id"`
	SistemaID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"sistema_id"`
	EntrenadorID     *uuid.UUID `gorm:"type:uuid;index" json:"entrenador_id,omitempty"`
	PagoMensual      float64    `gorm:"type:numeric(12,2);not null" json:"pago_mensual"`
	DiaDePago        int        `gorm:"not null" json:"dia_de_pago"`

	// Estado del mes: etiqueta cacheada, se fija al registrar un pago
	EstadoDelMes string `gorm:"size:20;not null;default:'Pendiente'" json:"estado_del_mes"`

	Notas  *string `gorm:"type:text" json:"notas,omitempty"`
	Activo bool    `gorm:"not null;default:true" json:"activo"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClienteModel) TableName() string { return "clientes" }
