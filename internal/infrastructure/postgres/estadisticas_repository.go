package postgres

import (
	"context"
	"fmt"

	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

var _ repository.EstadisticasRepository = (*EstadisticasRepo)(nil)

// EstadisticasRepo calcula los agregados del tablero directamente en la base,
// en una sola consulta.
type EstadisticasRepo struct {
	q Querier
}

// NewEstadisticasRepository construye el adaptador de estadísticas.
func NewEstadisticasRepository(q Querier) *EstadisticasRepo {
	return &EstadisticasRepo{q: q}
}

// Resumen devuelve los contadores y el valor total del inventario (cantidad *
// precio de venta de cada entrada con stock).
func (r *EstadisticasRepo) Resumen(ctx context.Context) (*repository.EstadisticasPuntos, error) {
	query := `
		SELECT
			(SELECT count(*) FROM puntos_mudras),
			(SELECT count(*) FROM puntos_mudras WHERE tipo = 'venta'),
			(SELECT count(*) FROM puntos_mudras WHERE tipo = 'deposito'),
			(SELECT count(*) FROM puntos_mudras WHERE activo),
			(SELECT count(DISTINCT articulo_id) FROM stock_puntos WHERE cantidad > 0),
			(SELECT coalesce(sum(s.cantidad * a.precio_venta), 0)
				FROM stock_puntos s JOIN articulos a ON a.id = s.articulo_id
				WHERE s.cantidad > 0),
			(SELECT count(*) FROM movimientos_stock
				WHERE fecha_movimiento >= date_trunc('day', now()))`
	var e repository.EstadisticasPuntos
	err := r.q.QueryRow(ctx, query).Scan(
		&e.TotalPuntos, &e.PuntosVenta, &e.Depositos, &e.PuntosActivos,
		&e.ArticulosConStock, &e.ValorTotalInventario, &e.MovimientosHoy,
	)
	if err != nil {
		return nil, fmt.Errorf("estadisticas puntos: %w", traducir(err))
	}
	return &e, nil
}
