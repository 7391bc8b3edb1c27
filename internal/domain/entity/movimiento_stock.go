package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock entre puntos. El motor de stock solo produce
// ajuste y transferencia; el resto existe para el listado histórico, que
// también muestra movimientos generados por ventas y devoluciones.
const (
	MovimientoAjuste        = "ajuste"
	MovimientoTransferencia = "transferencia"
	MovimientoEntrada       = "entrada"
	MovimientoSalida        = "salida"
	MovimientoVenta         = "venta"
	MovimientoDevolucion    = "devolucion"
)

// MovimientoStock es el registro de auditoría de un ajuste o transferencia.
// Append-only: nunca se actualiza ni se borra.
//
// Para ajuste: PuntoDestinoID es el punto ajustado, Cantidad es el delta
// (puede ser cero o negativo) y CantidadAnterior/CantidadNueva documentan el
// antes y después. Para transferencia: un único registro con origen y destino,
// Cantidad es la cantidad movida (siempre positiva).
type MovimientoStock struct {
	ID                string
	PuntoOrigenID     *int64
	PuntoDestinoID    *int64
	ArticuloID        int64
	Tipo              string
	Cantidad          decimal.Decimal
	CantidadAnterior  *decimal.Decimal
	CantidadNueva     *decimal.Decimal
	Motivo            string
	ReferenciaExterna string
	UsuarioID         string
	FechaMovimiento   time.Time
}
