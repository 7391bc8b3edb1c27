package repository

import (
	"context"

	"github.com/mudras/puntos-stock-api/internal/domain/entity"
)

// StockConArticulo fila de stock de un punto junto con el resumen del artículo.
type StockConArticulo struct {
	entity.StockPunto
	Articulo entity.Articulo
}

// FiltrosStock filtros para el stock de un punto.
type FiltrosStock struct {
	Busqueda string
	Rubro    string
	Limite   int
	Offset   int
}

// StockRepository define el puerto para consultar/actualizar stock por punto+artículo.
// Obtener y ObtenerParaUpdate devuelven una fila en cero si no existe entrada
// (representación dispersa). Usado dentro de transacciones para garantizar
// consistencia; ObtenerParaUpdate bloquea la fila (SELECT FOR UPDATE).
type StockRepository interface {
	Obtener(ctx context.Context, puntoID, articuloID int64) (*entity.StockPunto, error)
	ObtenerParaUpdate(ctx context.Context, puntoID, articuloID int64) (*entity.StockPunto, error)
	Upsert(ctx context.Context, stock *entity.StockPunto) error
	ListarPorPunto(ctx context.Context, puntoID int64, filtros FiltrosStock) ([]*StockConArticulo, int, error)
	// ListarPorArticulos devuelve todas las entradas de stock de los artículos
	// indicados, en todos los puntos. Base de la matriz de distribución.
	ListarPorArticulos(ctx context.Context, articuloIDs []int64) ([]*entity.StockPunto, error)
	// InicializarFaltantes crea filas en cero para cada artículo del catálogo
	// que aún no tiene entrada en el punto. Devuelve cuántas creó.
	InicializarFaltantes(ctx context.Context, puntoID int64) (int, error)
}
