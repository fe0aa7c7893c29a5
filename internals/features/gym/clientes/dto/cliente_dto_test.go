package dto

import (
	"testing"

	"github.com/google/uuid"

	"gestiongym_backend/internals/constants"
	"gestiongym_backend/internals/features/gym/clientes/model"
)

func TestCreateClienteRequestToModelDefaults(t *testing.T) {
	req := CreateClienteRequest{
		Nombre:      "Juan",
		Apellido:    "Pérez",
		PlanID:      uuid.New(),
		SistemaID:   uuid.New(),
		PagoMensual: 2000,
		DiaDePago:   5,
	}

	m := req.ToModel()

	if m.EstadoDelMes != constants.EstadoPendiente {
		t.Fatalf("estado_del_mes = %q, se esperaba %q", m.EstadoDelMes, constants.EstadoPendiente)
	}
	if !m.Activo {
		t.Fatal("un cliente nuevo debe quedar activo")
	}
	if m.Email != nil {
		t.Fatalf("email vacío debe quedar nil, llegó %v", *m.Email)
	}
}

func TestCreateClienteRequestToModelRespetaEstado(t *testing.T) {
	req := CreateClienteRequest{
		Nombre:       "Ana",
		Apellido:     "Gómez",
		PlanID:       uuid.New(),
		SistemaID:    uuid.New(),
		PagoMensual:  1500,
		DiaDePago:    1,
		EstadoDelMes: constants.EstadoPagado,
	}

	if m := req.ToModel(); m.EstadoDelMes != constants.EstadoPagado {
		t.Fatalf("estado_del_mes = %q, se esperaba %q", m.EstadoDelMes, constants.EstadoPagado)
	}
}

func TestUpdateClienteRequestApplyPatch(t *testing.T) {
	email := "viejo@mail.com"
	m := model.ClienteModel{
		Nombre:       "Juan",
		Apellido:     "Pérez",
		Email:        &email,
		PagoMensual:  2000,
		EstadoDelMes: constants.EstadoPendiente,
		Activo:       true,
	}

	nuevoNombre := "Juan Carlos"
	nuevoMonto := 2500.0
	req := UpdateClienteRequest{
		Nombre:      &nuevoNombre,
		PagoMensual: &nuevoMonto,
	}
	req.ApplyPatch(&m)

	if m.Nombre != "Juan Carlos" {
		t.Fatalf("nombre = %q, se esperaba Juan Carlos", m.Nombre)
	}
	if m.PagoMensual != 2500 {
		t.Fatalf("pago_mensual = %v, se esperaba 2500", m.PagoMensual)
	}
	// campos no enviados no se tocan
	if m.Apellido != "Pérez" {
		t.Fatalf("apellido cambió sin pedirlo: %q", m.Apellido)
	}
	if m.Email == nil || *m.Email != "viejo@mail.com" {
		t.Fatal("email cambió sin pedirlo")
	}

	// string vacío explícito limpia el campo
	vacio := ""
	req = UpdateClienteRequest{Email: &vacio}
	req.ApplyPatch(&m)
	if m.Email != nil {
		t.Fatalf("email = %v, se esperaba nil tras enviar cadena vacía", *m.Email)
	}

	// soft delete vía patch
	inactivo := false
	req = UpdateClienteRequest{Activo: &inactivo}
	req.ApplyPatch(&m)
	if m.Activo {
		t.Fatal("activo debía quedar en false")
	}
}
