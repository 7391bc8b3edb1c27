package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// EstadisticasPuntos resumen agregado para el tablero de puntos mudras.
type EstadisticasPuntos struct {
	TotalPuntos          int
	PuntosVenta          int
	Depositos            int
	PuntosActivos        int
	ArticulosConStock    int
	ValorTotalInventario decimal.Decimal
	MovimientosHoy       int
}

// EstadisticasRepository calcula los agregados directamente en la base.
type EstadisticasRepository interface {
	Resumen(ctx context.Context) (*EstadisticasPuntos, error)
}
