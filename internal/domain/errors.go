package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrTimeout           = errors.New("tiempo de espera agotado")
	ErrTransport         = errors.New("fallo de comunicación con el almacén de datos")
)

// InsufficientStockError indica que una transferencia pide más de lo disponible
// en el punto de origen. Lleva el stock disponible para que la UI pueda mostrar
// cuánto se puede transferir realmente.
type InsufficientStockError struct {
	PuntoID    int64
	ArticuloID int64
	Solicitado decimal.Decimal
	Disponible decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente en punto %d para artículo %d: solicitado %s, disponible %s",
		e.PuntoID, e.ArticuloID, e.Solicitado.String(), e.Disponible.String())
}

// Is permite errors.Is(err, domain.ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
