// Package stock implementa el motor de distribución de stock entre puntos
// mudras: ajuste absoluto, transferencia con ley de conservación, matriz de
// distribución e historial de movimientos.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mudras/puntos-stock-api/internal/application/cache"
	"github.com/mudras/puntos-stock-api/internal/application/dto"
	"github.com/mudras/puntos-stock-api/internal/domain"
	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

// StockUseCase casos de uso del motor de stock. Las lecturas van directo a los
// repositorios (con cache); las escrituras pasan por el TxRunner con bloqueo
// de fila (SELECT FOR UPDATE).
type StockUseCase struct {
	txRunner     TxRunner
	puntoRepo    repository.PuntoRepository
	articuloRepo repository.ArticuloRepository
	stockRepo    repository.StockRepository
	movRepo      repository.MovimientoRepository
	estRepo      repository.EstadisticasRepository
	cache        *cache.Cache
	ahora        func() time.Time
}

// NewStockUseCase construye el caso de uso. cache puede ser nil; ahora nil usa time.Now.
func NewStockUseCase(
	txRunner TxRunner,
	puntoRepo repository.PuntoRepository,
	articuloRepo repository.ArticuloRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovimientoRepository,
	estRepo repository.EstadisticasRepository,
	c *cache.Cache,
	ahora func() time.Time,
) *StockUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &StockUseCase{
		txRunner:     txRunner,
		puntoRepo:    puntoRepo,
		articuloRepo: articuloRepo,
		stockRepo:    stockRepo,
		movRepo:      movRepo,
		estRepo:      estRepo,
		cache:        c,
		ahora:        ahora,
	}
}

// AjusteInput entrada de un ajuste de stock.
type AjusteInput struct {
	PuntoID       int64
	ArticuloID    int64
	NuevaCantidad decimal.Decimal
	Motivo        string
	UsuarioID     string
}

// TransferenciaInput entrada de una transferencia entre puntos.
type TransferenciaInput struct {
	PuntoOrigenID  int64
	PuntoDestinoID int64
	ArticuloID     int64
	Cantidad       decimal.Decimal
	Motivo         string
	UsuarioID      string
}

// Ajustar fija el stock de (punto, artículo) en una cantidad total absoluta,
// no un delta. El delta implícito (nueva - actual) queda en el log de
// movimientos; delta cero también se registra. La etiqueta de la UI es
// "Nueva Cantidad Total" y este contrato la respeta: quien quiera sumar usa
// Incrementar, que lee y delega acá.
func (uc *StockUseCase) Ajustar(ctx context.Context, in AjusteInput) (*dto.StockPuntoResponse, error) {
	if in.NuevaCantidad.IsNegative() {
		return nil, fmt.Errorf("%w: la nueva cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	if err := uc.verificarPunto(ctx, in.PuntoID); err != nil {
		return nil, err
	}
	articulo, err := uc.verificarArticulo(ctx, in.ArticuloID)
	if err != nil {
		return nil, err
	}

	now := uc.ahora()
	var actualizado *entity.StockPunto
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, movRepo repository.MovimientoRepository) error {
		// Bloquea la fila (SELECT FOR UPDATE); si no existe, llega en cero y
		// el upsert la crea: alta diferida de la entrada de stock.
		stock, err := stockRepo.ObtenerParaUpdate(ctx, in.PuntoID, in.ArticuloID)
		if err != nil {
			return err
		}
		anterior := stock.Cantidad
		delta := in.NuevaCantidad.Sub(anterior)

		stock.Cantidad = in.NuevaCantidad
		stock.FechaActualizacion = now
		if err := stockRepo.Upsert(ctx, stock); err != nil {
			return err
		}

		nueva := in.NuevaCantidad
		mov := &entity.MovimientoStock{
			ID:               uuid.New().String(),
			PuntoDestinoID:   &in.PuntoID,
			ArticuloID:       in.ArticuloID,
			Tipo:             entity.MovimientoAjuste,
			Cantidad:         delta,
			CantidadAnterior: &anterior,
			CantidadNueva:    &nueva,
			Motivo:           in.Motivo,
			UsuarioID:        in.UsuarioID,
			FechaMovimiento:  now,
		}
		if err := movRepo.Crear(ctx, mov); err != nil {
			return err
		}
		actualizado = stock
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidarLecturas()
	return toStockResponse(actualizado, articulo), nil
}

// Incrementar es la conveniencia "sumar delta": lee la cantidad actual y llama
// al primitivo absoluto. No reemplaza al contrato de Ajustar, lo envuelve.
func (uc *StockUseCase) Incrementar(ctx context.Context, puntoID, articuloID int64, delta decimal.Decimal, motivo, usuarioID string) (*dto.StockPuntoResponse, error) {
	actual, err := uc.stockRepo.Obtener(ctx, puntoID, articuloID)
	if err != nil {
		return nil, err
	}
	nueva := actual.Cantidad.Add(delta)
	if nueva.IsNegative() {
		return nil, fmt.Errorf("%w: el incremento dejaría el stock negativo", domain.ErrInvalidInput)
	}
	return uc.Ajustar(ctx, AjusteInput{
		PuntoID:       puntoID,
		ArticuloID:    articuloID,
		NuevaCantidad: nueva,
		Motivo:        motivo,
		UsuarioID:     usuarioID,
	})
}

// Transferir mueve cantidad de un artículo del punto origen al destino.
// Invariante: la suma total de stock del artículo no cambia; solo Ajustar
// puede crear o destruir stock. Transferir exactamente todo lo disponible es
// válido y deja el origen en 0.
func (uc *StockUseCase) Transferir(ctx context.Context, in TransferenciaInput) (*dto.TransferenciaResponse, error) {
	if !in.Cantidad.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad a transferir debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if in.PuntoOrigenID == in.PuntoDestinoID {
		return nil, fmt.Errorf("%w: origen y destino deben diferir", domain.ErrInvalidInput)
	}
	if err := uc.verificarPunto(ctx, in.PuntoOrigenID); err != nil {
		return nil, err
	}
	if err := uc.verificarPunto(ctx, in.PuntoDestinoID); err != nil {
		return nil, err
	}
	articulo, err := uc.verificarArticulo(ctx, in.ArticuloID)
	if err != nil {
		return nil, err
	}

	now := uc.ahora()
	movID := uuid.New().String()
	var origen, destino *entity.StockPunto
	err = uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, movRepo repository.MovimientoRepository) error {
		// Bloqueo de ambas filas en orden de id ascendente para que dos
		// transferencias cruzadas no se bloqueen mutuamente.
		primero, segundo := in.PuntoOrigenID, in.PuntoDestinoID
		if segundo < primero {
			primero, segundo = segundo, primero
		}
		filaPrimero, err := stockRepo.ObtenerParaUpdate(ctx, primero, in.ArticuloID)
		if err != nil {
			return err
		}
		filaSegundo, err := stockRepo.ObtenerParaUpdate(ctx, segundo, in.ArticuloID)
		if err != nil {
			return err
		}
		if filaPrimero.PuntoID == in.PuntoOrigenID {
			origen, destino = filaPrimero, filaSegundo
		} else {
			origen, destino = filaSegundo, filaPrimero
		}

		if origen.Cantidad.LessThan(in.Cantidad) {
			return &domain.InsufficientStockError{
				PuntoID:    in.PuntoOrigenID,
				ArticuloID: in.ArticuloID,
				Solicitado: in.Cantidad,
				Disponible: origen.Cantidad,
			}
		}

		origen.Cantidad = origen.Cantidad.Sub(in.Cantidad)
		destino.Cantidad = destino.Cantidad.Add(in.Cantidad)
		origen.FechaActualizacion = now
		destino.FechaActualizacion = now
		if err := stockRepo.Upsert(ctx, origen); err != nil {
			return err
		}
		if err := stockRepo.Upsert(ctx, destino); err != nil {
			return err
		}

		// Un único movimiento con origen y destino: el historial muestra la
		// transferencia como un hecho, no como dos mitades.
		mov := &entity.MovimientoStock{
			ID:              movID,
			PuntoOrigenID:   &in.PuntoOrigenID,
			PuntoDestinoID:  &in.PuntoDestinoID,
			ArticuloID:      in.ArticuloID,
			Tipo:            entity.MovimientoTransferencia,
			Cantidad:        in.Cantidad,
			Motivo:          in.Motivo,
			UsuarioID:       in.UsuarioID,
			FechaMovimiento: now,
		}
		return movRepo.Crear(ctx, mov)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidarLecturas()
	return &dto.TransferenciaResponse{
		Origen:       *toStockResponse(origen, articulo),
		Destino:      *toStockResponse(destino, articulo),
		MovimientoID: movID,
	}, nil
}

// verificarPunto falla con ErrNotFound si el punto no existe.
func (uc *StockUseCase) verificarPunto(ctx context.Context, id int64) error {
	punto, err := uc.puntoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if punto == nil {
		return fmt.Errorf("%w: punto %d", domain.ErrNotFound, id)
	}
	return nil
}

// verificarArticulo falla con ErrNotFound si el artículo no existe en el catálogo.
func (uc *StockUseCase) verificarArticulo(ctx context.Context, id int64) (*entity.Articulo, error) {
	articulo, err := uc.articuloRepo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if articulo == nil {
		return nil, fmt.Errorf("%w: artículo %d", domain.ErrNotFound, id)
	}
	return articulo, nil
}

// invalidarLecturas vuela de la cache toda vista que una escritura deja vieja.
func (uc *StockUseCase) invalidarLecturas() {
	uc.cache.Invalidar("stock")
	uc.cache.Invalidar("matriz")
	uc.cache.Invalidar("movimientos")
	uc.cache.Invalidar("estadisticas")
}

func toStockResponse(s *entity.StockPunto, articulo *entity.Articulo) *dto.StockPuntoResponse {
	resp := &dto.StockPuntoResponse{
		PuntoID:            s.PuntoID,
		ArticuloID:         s.ArticuloID,
		Cantidad:           s.Cantidad,
		StockMinimo:        s.StockMinimo,
		FechaActualizacion: s.FechaActualizacion,
	}
	if articulo != nil {
		resp.Articulo = &dto.ArticuloResumen{
			ID:          articulo.ID,
			Codigo:      articulo.Codigo,
			Descripcion: articulo.Descripcion,
			Rubro:       articulo.Rubro,
			PrecioVenta: articulo.PrecioVenta,
		}
	}
	return resp
}
