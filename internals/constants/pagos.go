package constants

// Estados del mes de un cliente (cache derivado, se fija al registrar un pago)
const (
	EstadoPagado    = "Pagado"
	EstadoPendiente = "Pendiente"
)

// Métodos de pago disponibles en el formulario
var MetodosPago = []string{
	"Efectivo",
	"Tarjeta de Crédito",
	"Tarjeta de Débito",
	"Transferencia",
	"Otro",
}

func EsEstadoValido(estado string) bool {
	return estado == EstadoPagado || estado == EstadoPendiente
}

func EsMetodoValido(metodo string) bool {
	for _, m := range MetodosPago {
		if m == metodo {
			return true
		}
	}
	return false
}
