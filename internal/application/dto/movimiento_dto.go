package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovimientoResponse una fila del historial de movimientos.
type MovimientoResponse struct {
	ID                 string           `json:"id"`
	Tipo               string           `json:"tipo"`
	ArticuloID         int64            `json:"articulo_id"`
	ArticuloCodigo     string           `json:"articulo_codigo"`
	ArticuloDesc       string           `json:"articulo_descripcion"`
	PuntoOrigenID      *int64           `json:"punto_origen_id,omitempty"`
	PuntoOrigenNombre  *string          `json:"punto_origen_nombre,omitempty"`
	PuntoDestinoID     *int64           `json:"punto_destino_id,omitempty"`
	PuntoDestinoNombre *string          `json:"punto_destino_nombre,omitempty"`
	Cantidad           decimal.Decimal  `json:"cantidad"`
	CantidadAnterior   *decimal.Decimal `json:"cantidad_anterior,omitempty"`
	CantidadNueva      *decimal.Decimal `json:"cantidad_nueva,omitempty"`
	Motivo             string           `json:"motivo,omitempty"`
	ReferenciaExterna  string           `json:"referencia_externa,omitempty"`
	UsuarioID          string           `json:"usuario_id,omitempty"`
	FechaMovimiento    time.Time        `json:"fecha_movimiento"`
}

// MovimientoListResponse historial paginado.
type MovimientoListResponse struct {
	Items []MovimientoResponse `json:"movimientos"`
	Page  PageResponse         `json:"page"`
}
