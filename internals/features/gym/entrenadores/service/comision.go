package service

import "math"

// PagoPromedioAsumido es la mensualidad de referencia para estimar
// comisiones cuando todavía no hay pagos reales del mes.
const PagoPromedioAsumido = 2000.0

// EstimarComision calcula la comisión estimada de un entrenador:
// clientes activos por la mensualidad de referencia por su porcentaje,
// redondeado a 2 decimales. Con 12 clientes y 10% devuelve 2400.
func EstimarComision(clientesActivos int64, porcentaje float64) float64 {
	if clientesActivos <= 0 || porcentaje <= 0 {
		return 0
	}
	monto := float64(clientesActivos) * PagoPromedioAsumido * porcentaje / 100
	return math.Round(monto*100) / 100
}
