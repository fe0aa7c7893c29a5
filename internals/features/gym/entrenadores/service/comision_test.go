package service

import "testing"

func TestEstimarComision(t *testing.T) {
	cases := []struct {
		name       string
		clientes   int64
		porcentaje float64
		want       float64
	}{
		{"doce clientes al diez por ciento", 12, 10, 2400},
		{"un cliente al cinco por ciento", 1, 5, 100},
		{"porcentaje con decimales redondea a 2", 7, 3.33, 466.2},
		{"sin clientes", 0, 10, 0},
		{"sin porcentaje", 8, 0, 0},
		{"porcentaje negativo", 8, -5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EstimarComision(tc.clientes, tc.porcentaje)
			if got != tc.want {
				t.Fatalf("EstimarComision(%d, %v) = %v, se esperaba %v", tc.clientes, tc.porcentaje, got, tc.want)
			}
		})
	}
}
