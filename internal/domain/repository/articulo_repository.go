package repository

import (
	"context"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
)

// FiltrosArticulos filtros de búsqueda sobre el catálogo.
type FiltrosArticulos struct {
	Busqueda  string // ya normalizada (minúsculas, sin acentos)
	Rubro     string
	Proveedor string
}

// ArticuloRepository puerto de solo lectura sobre el catálogo de artículos.
// El catálogo pertenece a otro sistema; este servicio nunca lo muta.
type ArticuloRepository interface {
	ObtenerPorID(ctx context.Context, id int64) (*entity.Articulo, error)
	Buscar(ctx context.Context, filtros FiltrosArticulos) ([]*entity.Articulo, error)
}
