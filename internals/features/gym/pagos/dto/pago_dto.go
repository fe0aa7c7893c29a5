package dto

import (
	"time"

	"github.com/google/uuid"

	"gestiongym_backend/internals/features/gym/pagos/model"
)

type CreatePagoRequest struct {
	ClienteID          uuid.UUID `json:"cliente_id" validate:"required"`
	Monto              *float64  `json:"monto" validate:"omitempty,gt=0"`
	FechaPago          *string   `json:"fecha_pago" validate:"omitempty,datetime=2006-01-02"`
	MesCorrespondiente *string   `json:"mes_correspondiente" validate:"omitempty,datetime=2006-01"`
	MetodoPago         *string   `json:"metodo_pago"`
	Comprobante        *string   `json:"comprobante" validate:"omitempty,max=120"`
	Notas              *string   `json:"notas"`
}

// ToModel aplica los defaults del flujo de registro: monto desde la
// mensualidad del cliente, fecha de hoy y el mes en curso.
func (r CreatePagoRequest) ToModel(pagoMensual float64, creadoPor *uuid.UUID) model.PagoModel {
	now := time.Now()

	monto := pagoMensual
	if r.Monto != nil {
		monto = *r.Monto
	}

	fechaPago := now
	if r.FechaPago != nil {
		if parsed, err := time.Parse("2006-01-02", *r.FechaPago); err == nil {
			fechaPago = parsed
		}
	}

	mes := now.Format("2006-01")
	if r.MesCorrespondiente != nil {
		mes = *r.MesCorrespondiente
	}

	return model.PagoModel{
		ClienteID:          r.ClienteID,
		Monto:              monto,
		FechaPago:          fechaPago,
		MesCorrespondiente: mes,
		MetodoPago:         r.MetodoPago,
		Comprobante:        r.Comprobante,
		Notas:              r.Notas,
		CreadoPor:          creadoPor,
	}
}

type UpdatePagoRequest struct {
	Monto              *float64 `json:"monto" validate:"omitempty,gt=0"`
	FechaPago          *string  `json:"fecha_pago" validate:"omitempty,datetime=2006-01-02"`
	MesCorrespondiente *string  `json:"mes_correspondiente" validate:"omitempty,datetime=2006-01"`
	MetodoPago         *string  `json:"metodo_pago"`
	Comprobante        *string  `json:"comprobante" validate:"omitempty,max=120"`
	Notas              *string  `json:"notas"`
}

func (r UpdatePagoRequest) ApplyPatch(m *model.PagoModel) {
	if r.Monto != nil {
		m.Monto = *r.Monto
	}
	if r.FechaPago != nil {
		if parsed, err := time.Parse("2006-01-02", *r.FechaPago); err == nil {
			m.FechaPago = parsed
		}
	}
	if r.MesCorrespondiente != nil {
		m.MesCorrespondiente = *r.MesCorrespondiente
	}
	if r.MetodoPago != nil {
		m.MetodoPago = r.MetodoPago
	}
	if r.Comprobante != nil {
		m.Comprobante = r.Comprobante
	}
	if r.Notas != nil {
		m.Notas = r.Notas
	}
}

// PagoResponse agrega el nombre del cliente resuelto por JOIN.
type PagoResponse struct {
	model.PagoModel
	ClienteNombre string `json:"cliente_nombre" gorm:"column:cliente_nombre"`
}
