package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPunto representa el stock asignado de un artículo en un punto mudras.
// Representación dispersa: la ausencia de fila equivale a cantidad 0.
// Solo se modifica vía ajuste o transferencia, dentro de una transacción.
type StockPunto struct {
	PuntoID            int64
	ArticuloID         int64
	Cantidad           decimal.Decimal
	StockMinimo        decimal.Decimal
	FechaActualizacion time.Time
}
