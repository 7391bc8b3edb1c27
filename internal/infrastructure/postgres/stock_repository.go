package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx). La tabla es dispersa: sin fila equivale a cantidad cero, y los
// lectores reciben la fila en cero en lugar de un not-found.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Obtener devuelve el stock de (punto, artículo); fila en cero si no hay entrada.
func (r *StockRepo) Obtener(ctx context.Context, puntoID, articuloID int64) (*entity.StockPunto, error) {
	query := `
		SELECT punto_id, articulo_id, cantidad, stock_minimo, fecha_actualizacion
		FROM stock_puntos WHERE punto_id = $1 AND articulo_id = $2`
	return r.obtener(ctx, query, puntoID, articuloID)
}

// ObtenerParaUpdate es Obtener con bloqueo de fila (SELECT FOR UPDATE); solo
// tiene sentido dentro de una transacción.
func (r *StockRepo) ObtenerParaUpdate(ctx context.Context, puntoID, articuloID int64) (*entity.StockPunto, error) {
	query := `
		SELECT punto_id, articulo_id, cantidad, stock_minimo, fecha_actualizacion
		FROM stock_puntos WHERE punto_id = $1 AND articulo_id = $2
		FOR UPDATE`
	return r.obtener(ctx, query, puntoID, articuloID)
}

func (r *StockRepo) obtener(ctx context.Context, query string, puntoID, articuloID int64) (*entity.StockPunto, error) {
	var s entity.StockPunto
	err := r.q.QueryRow(ctx, query, puntoID, articuloID).Scan(
		&s.PuntoID, &s.ArticuloID, &s.Cantidad, &s.StockMinimo, &s.FechaActualizacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockPunto{
				PuntoID:     puntoID,
				ArticuloID:  articuloID,
				Cantidad:    decimal.Zero,
				StockMinimo: decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("get stock: %w", traducir(err))
	}
	return &s, nil
}

// Upsert inserta o actualiza la entrada de stock (por punto y artículo).
func (r *StockRepo) Upsert(ctx context.Context, s *entity.StockPunto) error {
	query := `
		INSERT INTO stock_puntos (punto_id, articulo_id, cantidad, stock_minimo, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (punto_id, articulo_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, fecha_actualizacion = EXCLUDED.fecha_actualizacion`
	_, err := r.q.Exec(ctx, query, s.PuntoID, s.ArticuloID, s.Cantidad, s.StockMinimo, s.FechaActualizacion)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", traducir(err))
	}
	return nil
}

// ListarPorPunto lista el stock de un punto con el resumen del artículo, para
// la grilla de inventario.
func (r *StockRepo) ListarPorPunto(ctx context.Context, puntoID int64, f repository.FiltrosStock) ([]*repository.StockConArticulo, int, error) {
	where := ` WHERE s.punto_id = $1`
	args := []any{puntoID}
	pos := 2
	if f.Busqueda != "" {
		where += fmt.Sprintf(" AND lower(unaccent(a.codigo || ' ' || a.descripcion)) LIKE '%%' || $%d || '%%'", pos)
		args = append(args, f.Busqueda)
		pos++
	}
	if f.Rubro != "" {
		where += fmt.Sprintf(" AND a.rubro = $%d", pos)
		args = append(args, f.Rubro)
		pos++
	}

	var total int
	countQuery := `SELECT count(*) FROM stock_puntos s JOIN articulos a ON a.id = s.articulo_id` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock punto: %w", traducir(err))
	}

	query := `
		SELECT s.punto_id, s.articulo_id, s.cantidad, s.stock_minimo, s.fecha_actualizacion,
			a.id, a.codigo, a.descripcion, a.rubro, a.proveedor, a.precio_venta
		FROM stock_puntos s JOIN articulos a ON a.id = s.articulo_id` + where +
		fmt.Sprintf(" ORDER BY s.articulo_id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limite, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock punto: %w", traducir(err))
	}
	defer rows.Close()
	var list []*repository.StockConArticulo
	for rows.Next() {
		var e repository.StockConArticulo
		if err := rows.Scan(
			&e.PuntoID, &e.ArticuloID, &e.Cantidad, &e.StockMinimo, &e.FechaActualizacion,
			&e.Articulo.ID, &e.Articulo.Codigo, &e.Articulo.Descripcion,
			&e.Articulo.Rubro, &e.Articulo.Proveedor, &e.Articulo.PrecioVenta,
		); err != nil {
			return nil, 0, fmt.Errorf("scan stock punto: %w", err)
		}
		list = append(list, &e)
	}
	return list, total, rows.Err()
}

// ListarPorArticulos devuelve todas las entradas de stock de los artículos
// indicados, en todos los puntos. Base de la matriz de distribución.
func (r *StockRepo) ListarPorArticulos(ctx context.Context, articuloIDs []int64) ([]*entity.StockPunto, error) {
	if len(articuloIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT punto_id, articulo_id, cantidad, stock_minimo, fecha_actualizacion
		FROM stock_puntos WHERE articulo_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, articuloIDs)
	if err != nil {
		return nil, fmt.Errorf("list stock articulos: %w", traducir(err))
	}
	defer rows.Close()
	var list []*entity.StockPunto
	for rows.Next() {
		var s entity.StockPunto
		if err := rows.Scan(&s.PuntoID, &s.ArticuloID, &s.Cantidad, &s.StockMinimo, &s.FechaActualizacion); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// InicializarFaltantes crea filas en cero para cada artículo del catálogo sin
// entrada en el punto. Devuelve cuántas creó.
func (r *StockRepo) InicializarFaltantes(ctx context.Context, puntoID int64) (int, error) {
	query := `
		INSERT INTO stock_puntos (punto_id, articulo_id, cantidad, stock_minimo, fecha_actualizacion)
		SELECT $1, a.id, 0, 0, now()
		FROM articulos a
		WHERE NOT EXISTS (
			SELECT 1 FROM stock_puntos s WHERE s.punto_id = $1 AND s.articulo_id = a.id
		)`
	cmd, err := r.q.Exec(ctx, query, puntoID)
	if err != nil {
		return 0, fmt.Errorf("inicializar stock: %w", traducir(err))
	}
	return int(cmd.RowsAffected()), nil
}
