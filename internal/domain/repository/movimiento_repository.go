package repository

import (
	"context"
	"time"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
)

// MovimientoConDetalle movimiento junto con los nombres que el historial
// muestra sin segunda consulta.
type MovimientoConDetalle struct {
	entity.MovimientoStock
	ArticuloCodigo      string
	ArticuloDescripcion string
	PuntoOrigenNombre   *string
	PuntoDestinoNombre  *string
}

// FiltrosMovimientos filtros del historial de movimientos.
type FiltrosMovimientos struct {
	PuntoID    *int64 // coincide contra origen o destino
	ArticuloID *int64
	Tipo       string
	Desde      *time.Time
	Hasta      *time.Time
	Limite     int
	Offset     int
}

// MovimientoRepository define el puerto de persistencia del log de movimientos.
// El log es append-only: no hay Update ni Delete.
type MovimientoRepository interface {
	Crear(ctx context.Context, movimiento *entity.MovimientoStock) error
	Listar(ctx context.Context, filtros FiltrosMovimientos) ([]*MovimientoConDetalle, int, error)
}
