package dto

import (
	"gorm.io/datatypes"

	"gestiongym_backend/internals/features/gym/entrenadores/model"
)

type CreateEntrenadorRequest struct {
	Nombre             string         `json:"nombre" validate:"required,min=2,max=80"`
	Apellido           string         `json:"apellido" validate:"required,min=2,max=80"`
	Email              *string        `json:"email" validate:"omitempty,email"`
	Telefono           *string        `json:"telefono" validate:"omitempty,max=30"`
	Especialidades     datatypes.JSON `json:"especialidades"`
	ComisionPorcentaje float64        `json:"comision_porcentaje" validate:"gte=0,lte=100"`
	Notas              *string        `json:"notas"`
}

func (r CreateEntrenadorRequest) ToModel() model.EntrenadorModel {
	return model.EntrenadorModel{
		Nombre:             r.Nombre,
		Apellido:           r.Apellido,
		Email:              r.Email,
		Telefono:           r.Telefono,
		Especialidades:     r.Especialidades,
		ComisionPorcentaje: r.ComisionPorcentaje,
		Notas:              r.Notas,
		Activo:             true,
	}
}

type UpdateEntrenadorRequest struct {
	Nombre             *string        `json:"nombre" validate:"omitempty,min=2,max=80"`
	Apellido           *string        `json:"apellido" validate:"omitempty,min=2,max=80"`
	Email              *string        `json:"email" validate:"omitempty,email"`
	Telefono           *string        `json:"telefono" validate:"omitempty,max=30"`
	Especialidades     datatypes.JSON `json:"especialidades"`
	ComisionPorcentaje *float64       `json:"comision_porcentaje" validate:"omitempty,gte=0,lte=100"`
	Notas              *string        `json:"notas"`
	Activo             *bool          `json:"activo"`
}

func (r UpdateEntrenadorRequest) ApplyPatch(m *model.EntrenadorModel) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Apellido != nil {
		m.Apellido = *r.Apellido
	}
	if r.Email != nil {
		m.Email = r.Email
	}
	if r.Telefono != nil {
		m.Telefono = r.Telefono
	}
	if len(r.Especialidades) > 0 {
		m.Especialidades = r.Especialidades
	}
	if r.ComisionPorcentaje != nil {
		m.ComisionPorcentaje = *r.ComisionPorcentaje
	}
	if r.Notas != nil {
		m.Notas = r.Notas
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}

// EntrenadorConClientes agrega la cantidad de clientes activos y la
// comisión estimada del mes, resueltas en una sola query agrupada.
type EntrenadorConClientes struct {
	model.EntrenadorModel
	ClientesActivos  int64   `json:"clientes_activos" gorm:"column:clientes_activos"`
	ComisionEstimada float64 `json:"comision_estimada" gorm:"-"`
}
