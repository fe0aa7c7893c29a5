package service

import (
	"regexp"
	"testing"

	"gestiongym_backend/internals/features/gym/pagos/model"
)

func TestSumMontos(t *testing.T) {
	if got := SumMontos(nil); got != 0 {
		t.Fatalf("SumMontos(nil) = %v, se esperaba 0", got)
	}
	if got := SumMontos([]model.PagoModel{}); got != 0 {
		t.Fatalf("SumMontos(vacío) = %v, se esperaba 0", got)
	}

	pagos := []model.PagoModel{{Monto: 15000}}
	if got := SumMontos(pagos); got != 15000 {
		t.Fatalf("SumMontos un pago = %v, se esperaba 15000", got)
	}

	pagos = []model.PagoModel{{Monto: 1500}, {Monto: 2000}, {Monto: 500.50}}
	if got := SumMontos(pagos); got != 4000.50 {
		t.Fatalf("SumMontos varios = %v, se esperaba 4000.50", got)
	}
}

func TestMesActualFormato(t *testing.T) {
	mes := MesActual()
	if !regexp.MustCompile(`^\d{4}-\d{2}$`).MatchString(mes) {
		t.Fatalf("MesActual() = %q, se esperaba formato YYYY-MM", mes)
	}
}
