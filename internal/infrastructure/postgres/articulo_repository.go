package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

var _ repository.ArticuloRepository = (*ArticuloRepo)(nil)

// ArticuloRepo adaptador de solo lectura sobre el catálogo de artículos.
type ArticuloRepo struct {
	q Querier
}

// NewArticuloRepository construye el adaptador del catálogo.
func NewArticuloRepository(q Querier) *ArticuloRepo {
	return &ArticuloRepo{q: q}
}

// ObtenerPorID devuelve el artículo o nil si no existe.
func (r *ArticuloRepo) ObtenerPorID(ctx context.Context, id int64) (*entity.Articulo, error) {
	query := `
		SELECT id, codigo, descripcion, rubro, proveedor, precio_venta
		FROM articulos WHERE id = $1`
	var a entity.Articulo
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Codigo, &a.Descripcion, &a.Rubro, &a.Proveedor, &a.PrecioVenta,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get articulo: %w", traducir(err))
	}
	return &a, nil
}

// Buscar filtra el catálogo por texto, rubro y proveedor, en orden de id.
func (r *ArticuloRepo) Buscar(ctx context.Context, f repository.FiltrosArticulos) ([]*entity.Articulo, error) {
	query := `
		SELECT id, codigo, descripcion, rubro, proveedor, precio_venta
		FROM articulos WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Busqueda != "" {
		query += fmt.Sprintf(" AND lower(unaccent(codigo || ' ' || descripcion)) LIKE '%%' || $%d || '%%'", pos)
		args = append(args, f.Busqueda)
		pos++
	}
	if f.Rubro != "" {
		query += fmt.Sprintf(" AND rubro = $%d", pos)
		args = append(args, f.Rubro)
		pos++
	}
	if f.Proveedor != "" {
		query += fmt.Sprintf(" AND proveedor = $%d", pos)
		args = append(args, f.Proveedor)
		pos++
	}
	query += " ORDER BY id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("buscar articulos: %w", traducir(err))
	}
	defer rows.Close()
	var list []*entity.Articulo
	for rows.Next() {
		var a entity.Articulo
		if err := rows.Scan(&a.ID, &a.Codigo, &a.Descripcion, &a.Rubro, &a.Proveedor, &a.PrecioVenta); err != nil {
			return nil, fmt.Errorf("scan articulo: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
