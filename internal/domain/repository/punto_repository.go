package repository

import (
	"context"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
)

// FiltrosPuntos filtros de listado de puntos mudras.
type FiltrosPuntos struct {
	Tipo     *string // venta | deposito
	Activo   *bool
	Busqueda string // se compara contra nombre y descripción, ya normalizada
	Limite   int
	Offset   int
}

// PuntoRepository define el puerto de persistencia para Punto (DIP).
// Listar garantiza orden de creación (id ascendente).
type PuntoRepository interface {
	Crear(ctx context.Context, punto *entity.Punto) error
	ObtenerPorID(ctx context.Context, id int64) (*entity.Punto, error)
	Actualizar(ctx context.Context, punto *entity.Punto) error
	Listar(ctx context.Context, filtros FiltrosPuntos) ([]*entity.Punto, int, error)
	ListarActivos(ctx context.Context) ([]*entity.Punto, error)
}
