package dto

import (
	"time"

	"github.com/google/uuid"

	"gestiongym_backend/internals/constants"
	"gestiongym_backend/internals/features/gym/clientes/model"
)

//
// ========== CREATE ==========
//

type CreateClienteRequest struct {
	Nombre          string  `json:"nombre" validate:"required,max=100"`
	Apellido        string  `json:"apellido" validate:"required,max=100"`
	Email           string  `json:"email" validate:"omitempty,email"`
	Telefono        string  `json:"telefono" validate:"omitempty,max=30"`
	Direccion       string  `json:"direccion" validate:"omitempty,max=255"`
	FechaNacimiento *string `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`

	PlanID       uuid.UUID  `json:"plan_id" validate:"required"`
	SistemaID    uuid.UUID  `json:"sistema_id" validate:"required"`
	EntrenadorID *uuid.UUID `json:"entrenador_id" validate:"omitempty"`
	PagoMensual  float64    `json:"pago_mensual" validate:"required,gt=0"`
	DiaDePago    int        `json:"dia_de_pago" validate:"required,min=1,max=31"`

	EstadoDelMes string `json:"estado_del_mes" validate:"omitempty,oneof=Pagado Pendiente"`
	Notas        string `json:"notas" validate:"omitempty"`
}

func (r CreateClienteRequest) ToModel() model.ClienteModel {
	m := model.ClienteModel{
		Nombre:       r.Nombre,
		Apellido:     r.Apellido,
		PlanID:       r.PlanID,
		SistemaID:    r.SistemaID,
		EntrenadorID: r.EntrenadorID,
		PagoMensual:  r.PagoMensual,
		DiaDePago:    r.DiaDePago,
		EstadoDelMes: constants.EstadoPendiente, // default explícito, igual que la DB
		Activo:       true,
	}

	if r.EstadoDelMes != "" {
		m.EstadoDelMes = r.EstadoDelMes
	}
	if p := nilIfEmpty(r.Email); p != nil {
		m.Email = p
	}
	if p := nilIfEmpty(r.Telefono); p != nil {
		m.Telefono = p
	}
	if p := nilIfEmpty(r.Direccion); p != nil {
		m.Direccion = p
	}
	if p := nilIfEmpty(r.Notas); p != nil {
		m.Notas = p
	}
	if r.FechaNacimiento != nil && *r.FechaNacimiento != "" {
		if t, err := time.Parse("2006-01-02", *r.FechaNacimiento); err == nil {
			m.FechaNacimiento = &t
		}
	}
	return m
}

//
// ========== UPDATE / PATCH ==========
//

// Campos pointer: nil = no cambiar, non-nil = set al valor.
type UpdateClienteRequest struct {
	Nombre          *string    `json:"nombre" validate:"omitempty,max=100"`
	Apellido        *string    `json:"apellido" validate:"omitempty,max=100"`
	Email           *string    `json:"email" validate:"omitempty,email"`
	Telefono        *string    `json:"telefono" validate:"omitempty,max=30"`
	Direccion       *string    `json:"direccion" validate:"omitempty,max=255"`
	FechaNacimiento *string    `json:"fecha_nacimiento" validate:"omitempty,datetime=2006-01-02"`
	PlanID          *uuid.UUID `json:"plan_id" validate:"omitempty"`
	SistemaID       *uuid.UUID `json:"sistema_id" validate:"omitempty"`
	EntrenadorID    *uuid.UUID `json:"entrenador_id" validate:"omitempty"`
	PagoMensual     *float64   `json:"pago_mensual" validate:"omitempty,gt=0"`
	DiaDePago       *int       `json:"dia_de_pago" validate:"omitempty,min=1,max=31"`
	EstadoDelMes    *string    `json:"estado_del_mes" validate:"omitempty,oneof=Pagado Pendiente"`
	Notas           *string    `json:"notas" validate:"omitempty"`
	Activo          *bool      `json:"activo" validate:"omitempty"`
}

func (r UpdateClienteRequest) ApplyPatch(m *model.ClienteModel) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Apellido != nil {
		m.Apellido = *r.Apellido
	}
	if r.Email != nil {
		m.Email = nilIfEmpty(*r.Email)
	}
	if r.Telefono != nil {
		m.Telefono = nilIfEmpty(*r.Telefono)
	}
	if r.Direccion != nil {
		m.Direccion = nilIfEmpty(*r.Direccion)
	}
	if r.FechaNacimiento != nil {
		if *r.FechaNacimiento == "" {
			m.FechaNacimiento = nil
		} else if t, err := time.Parse("2006-01-02", *r.FechaNacimiento); err == nil {
			m.FechaNacimiento = &t
		}
	}
	if r.PlanID != nil {
		m.PlanID = *r.PlanID
	}
	if r.SistemaID != nil {
		m.SistemaID = *r.SistemaID
	}
	if r.EntrenadorID != nil {
		m.EntrenadorID = r.EntrenadorID
	}
	if r.PagoMensual != nil {
		m.PagoMensual = *r.PagoMensual
	}
	if r.DiaDePago != nil {
		m.DiaDePago = *r.DiaDePago
	}
	if r.EstadoDelMes != nil {
		m.EstadoDelMes = *r.EstadoDelMes
	}
	if r.Notas != nil {
		m.Notas = nilIfEmpty(*r.Notas)
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}

//
// ========== RESPONSE ==========
//

// ClienteResponse: fila del cliente + nombres resueltos por JOIN
type ClienteResponse struct {
	model.ClienteModel
	EntrenadorNombre string `json:"entrenador_nombre,omitempty"`
	PlanNombre       string `json:"plan_nombre,omitempty"`
	SistemaNombre    string `json:"sistema_nombre,omitempty"`
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
