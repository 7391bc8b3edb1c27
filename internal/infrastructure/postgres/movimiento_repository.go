package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo adaptador del log de movimientos (usable con pool o tx).
// El log es append-only: este repo no expone Update ni Delete y la tabla
// tampoco debería aceptarlos.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Crear persiste un movimiento de stock.
func (r *MovimientoRepo) Crear(ctx context.Context, m *entity.MovimientoStock) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimientos_stock (id, punto_origen_id, punto_destino_id, articulo_id, tipo,
			cantidad, cantidad_anterior, cantidad_nueva, motivo, referencia_externa, usuario_id, fecha_movimiento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	motivo := (*string)(nil)
	if m.Motivo != "" {
		motivo = &m.Motivo
	}
	referencia := (*string)(nil)
	if m.ReferenciaExterna != "" {
		referencia = &m.ReferenciaExterna
	}
	usuario := (*string)(nil)
	if m.UsuarioID != "" {
		usuario = &m.UsuarioID
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.PuntoOrigenID, m.PuntoDestinoID, m.ArticuloID, m.Tipo,
		m.Cantidad, m.CantidadAnterior, m.CantidadNueva, motivo, referencia, usuario, m.FechaMovimiento,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", traducir(err))
	}
	return nil
}

// Listar devuelve el historial filtrado, más reciente primero, con los nombres
// de puntos y el resumen del artículo resueltos en la misma consulta.
func (r *MovimientoRepo) Listar(ctx context.Context, f repository.FiltrosMovimientos) ([]*repository.MovimientoConDetalle, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	pos := 1
	if f.PuntoID != nil {
		where += fmt.Sprintf(" AND (m.punto_origen_id = $%d OR m.punto_destino_id = $%d)", pos, pos)
		args = append(args, *f.PuntoID)
		pos++
	}
	if f.ArticuloID != nil {
		where += fmt.Sprintf(" AND m.articulo_id = $%d", pos)
		args = append(args, *f.ArticuloID)
		pos++
	}
	if f.Tipo != "" {
		where += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, f.Tipo)
		pos++
	}
	if f.Desde != nil {
		where += fmt.Sprintf(" AND m.fecha_movimiento >= $%d", pos)
		args = append(args, *f.Desde)
		pos++
	}
	if f.Hasta != nil {
		where += fmt.Sprintf(" AND m.fecha_movimiento <= $%d", pos)
		args = append(args, *f.Hasta)
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM movimientos_stock m`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movimientos: %w", traducir(err))
	}

	query := `
		SELECT m.id, m.punto_origen_id, m.punto_destino_id, m.articulo_id, m.tipo,
			m.cantidad, m.cantidad_anterior, m.cantidad_nueva, m.motivo, m.referencia_externa,
			m.usuario_id, m.fecha_movimiento,
			a.codigo, a.descripcion, po.nombre, pd.nombre
		FROM movimientos_stock m
		JOIN articulos a ON a.id = m.articulo_id
		LEFT JOIN puntos_mudras po ON po.id = m.punto_origen_id
		LEFT JOIN puntos_mudras pd ON pd.id = m.punto_destino_id` + where +
		fmt.Sprintf(" ORDER BY m.fecha_movimiento DESC, m.id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limite, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movimientos: %w", traducir(err))
	}
	defer rows.Close()
	var list []*repository.MovimientoConDetalle
	for rows.Next() {
		var d repository.MovimientoConDetalle
		var motivo, referencia, usuario *string
		if err := rows.Scan(
			&d.ID, &d.PuntoOrigenID, &d.PuntoDestinoID, &d.ArticuloID, &d.Tipo,
			&d.Cantidad, &d.CantidadAnterior, &d.CantidadNueva, &motivo, &referencia,
			&usuario, &d.FechaMovimiento,
			&d.ArticuloCodigo, &d.ArticuloDescripcion, &d.PuntoOrigenNombre, &d.PuntoDestinoNombre,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movimiento: %w", err)
		}
		if motivo != nil {
			d.Motivo = *motivo
		}
		if referencia != nil {
			d.ReferenciaExterna = *referencia
		}
		if usuario != nil {
			d.UsuarioID = *usuario
		}
		list = append(list, &d)
	}
	return list, total, rows.Err()
}
