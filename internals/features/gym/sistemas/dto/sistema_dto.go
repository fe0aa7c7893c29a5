package dto

import "gestiongym_backend/internals/features/gym/sistemas/model"

type CreateSistemaRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2,max=80"`
	Descripcion *string `json:"descripcion"`
}

func (r CreateSistemaRequest) ToModel() model.SistemaModel {
	return model.SistemaModel{
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Activo:      true,
	}
}

type UpdateSistemaRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=80"`
	Descripcion *string `json:"descripcion"`
	Activo      *bool   `json:"activo"`
}

func (r UpdateSistemaRequest) ApplyPatch(m *model.SistemaModel) {
	if r.Nombre != nil {
		m.Nombre = *r.Nombre
	}
	if r.Descripcion != nil {
		m.Descripcion = r.Descripcion
	}
	if r.Activo != nil {
		m.Activo = *r.Activo
	}
}
