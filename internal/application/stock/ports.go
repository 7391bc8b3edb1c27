package stock

import (
	"context"
	"time"

	"github.com/mudras/puntos-stock-api/internal/application/dto"
	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor de stock:
// ajuste (leer-calcular-escribir-loguear) y transferencia (restar-sumar-loguear)
// se confirman completos o no se confirman.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.MovimientoRepository,
	) error) error
}

// MatrizPDFGenerator genera el reporte PDF de la matriz de distribución.
type MatrizPDFGenerator interface {
	GenerarMatrizPDF(ctx context.Context, filas []dto.FilaMatrizStock, puntos []*entity.Punto, generado time.Time) ([]byte, error)
}
