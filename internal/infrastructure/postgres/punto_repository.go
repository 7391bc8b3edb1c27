package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

var _ repository.PuntoRepository = (*PuntoRepo)(nil)

// PuntoRepo implementación del puerto PuntoRepository sobre PostgreSQL.
type PuntoRepo struct {
	q Querier
}

// NewPuntoRepository construye el adaptador de puntos mudras. Pasar pool o tx (Querier).
func NewPuntoRepository(q Querier) *PuntoRepo {
	return &PuntoRepo{q: q}
}

const columnasPunto = `
	id, nombre, tipo, descripcion, direccion, telefono, email, activo,
	permite_ventas_online, maneja_stock_fisico, requiere_autorizacion,
	fecha_creacion, fecha_actualizacion`

// Crear persiste un punto nuevo; el id lo asigna la base.
func (r *PuntoRepo) Crear(ctx context.Context, p *entity.Punto) error {
	query := `
		INSERT INTO puntos_mudras (nombre, tipo, descripcion, direccion, telefono, email, activo,
			permite_ventas_online, maneja_stock_fisico, requiere_autorizacion,
			fecha_creacion, fecha_actualizacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Nombre, p.Tipo, p.Descripcion, p.Direccion, p.Telefono, p.Email, p.Activo,
		p.PermiteVentasOnline, p.ManejaStockFisico, p.RequiereAutorizacion,
		p.FechaCreacion, p.FechaActualizacion,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert punto: nombre duplicado: %w", err)
		}
		return fmt.Errorf("insert punto: %w", traducir(err))
	}
	return nil
}

// ObtenerPorID devuelve el punto o nil si no existe.
func (r *PuntoRepo) ObtenerPorID(ctx context.Context, id int64) (*entity.Punto, error) {
	query := `SELECT` + columnasPunto + ` FROM puntos_mudras WHERE id = $1`
	p, err := scanPunto(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get punto: %w", traducir(err))
	}
	return p, nil
}

// Actualizar persiste los campos editables de un punto. El tipo no está en el
// SET: es inmutable a nivel de adaptador también.
func (r *PuntoRepo) Actualizar(ctx context.Context, p *entity.Punto) error {
	query := `
		UPDATE puntos_mudras SET nombre = $2, descripcion = $3, direccion = $4,
			telefono = $5, email = $6, activo = $7, permite_ventas_online = $8,
			maneja_stock_fisico = $9, requiere_autorizacion = $10, fecha_actualizacion = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.Direccion, p.Telefono, p.Email, p.Activo,
		p.PermiteVentasOnline, p.ManejaStockFisico, p.RequiereAutorizacion, p.FechaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update punto: %w", traducir(err))
	}
	return nil
}

// Listar devuelve puntos en orden de creación (id ascendente) con el total sin
// paginar. La búsqueda llega ya normalizada; unaccent() empareja los acentos
// del lado de la base.
func (r *PuntoRepo) Listar(ctx context.Context, f repository.FiltrosPuntos) ([]*entity.Punto, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	pos := 1
	if f.Tipo != nil {
		where += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, *f.Tipo)
		pos++
	}
	if f.Activo != nil {
		where += fmt.Sprintf(" AND activo = $%d", pos)
		args = append(args, *f.Activo)
		pos++
	}
	if f.Busqueda != "" {
		where += fmt.Sprintf(" AND lower(unaccent(nombre || ' ' || coalesce(descripcion, ''))) LIKE '%%' || $%d || '%%'", pos)
		args = append(args, f.Busqueda)
		pos++
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM puntos_mudras`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count puntos: %w", traducir(err))
	}

	query := `SELECT` + columnasPunto + ` FROM puntos_mudras` + where +
		fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, f.Limite, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list puntos: %w", traducir(err))
	}
	defer rows.Close()
	var list []*entity.Punto
	for rows.Next() {
		p, err := scanPunto(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan punto: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// ListarActivos devuelve todos los puntos activos, sin paginar. Son las
// columnas de la matriz de distribución.
func (r *PuntoRepo) ListarActivos(ctx context.Context) ([]*entity.Punto, error) {
	query := `SELECT` + columnasPunto + ` FROM puntos_mudras WHERE activo ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list puntos activos: %w", traducir(err))
	}
	defer rows.Close()
	var list []*entity.Punto
	for rows.Next() {
		p, err := scanPunto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan punto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPunto(row pgx.Row) (*entity.Punto, error) {
	var p entity.Punto
	err := row.Scan(
		&p.ID, &p.Nombre, &p.Tipo, &p.Descripcion, &p.Direccion, &p.Telefono, &p.Email,
		&p.Activo, &p.PermiteVentasOnline, &p.ManejaStockFisico, &p.RequiereAutorizacion,
		&p.FechaCreacion, &p.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
