package dto

import (
	"github.com/lib/pq"

	"gestiongym_backend/internals/features/gym/planes/model"
)

type CreatePlanRequest struct {
	Nombre      string   `json:"nombre" validate:"required,min=2,max=80"`
	Descripcion *string  `json:"descripcion"`
	Precio      float64  `json:"precio" validate:"required,gt=0"`
	Beneficios  []string `json:"beneficios"`
}

func (r CreatePlanRequest) ToModel() model.PlanModel {
	return model.PlanModel{
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Precio:      r.Precio,
		Beneficios:  pq.StringArray(r.Beneficios),
		Activo:      true,
	}
}

type UpdatePlanRequest struct {
	Nombre      *string  `json:"nombre" validate:"omitempty,min=2,max=80"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio" validate:"omitempty,gt=0"`
	Beneficios  []string `json:"beneficios"`
	Activo      *bool    `json:"activo"`
}

func (r UpdatePlanRequest) ApplyPatch(m *model.PlanModel) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Descripcion != nil {
		m.Descripcion = r.Descripcion
	}
	if r.Precio != nil {
		m.Precio = *r.Precio
	}
	if r.Beneficios != nil {
		m.Beneficios = pq.StringArray(r.Beneficios)
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}
