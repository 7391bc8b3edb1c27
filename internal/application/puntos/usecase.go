// Package puntos implementa el registro de puntos mudras: altas, edición,
// listado y baja lógica de los locales de venta y depósitos que mantienen
// stock propio.
package puntos

import (
	"context"
	"fmt"
	"time"

	"github.com/mudras/puntos-stock-api/internal/application/cache"
	"github.com/mudras/puntos-stock-api/internal/application/dto"
	"github.com/mudras/puntos-stock-api/internal/domain"
	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
	"github.com/mudras/puntos-stock-api/pkg/textutil"
)

// PuntosUseCase casos de uso del registro de puntos mudras.
type PuntosUseCase struct {
	repo      repository.PuntoRepository
	stockRepo repository.StockRepository
	cache     *cache.Cache
	ahora     func() time.Time
}

// NewPuntosUseCase construye el caso de uso. cache puede ser nil (sin cache);
// ahora nil usa time.Now.
func NewPuntosUseCase(repo repository.PuntoRepository, stockRepo repository.StockRepository, c *cache.Cache, ahora func() time.Time) *PuntosUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &PuntosUseCase{repo: repo, stockRepo: stockRepo, cache: c, ahora: ahora}
}

// Crear da de alta un punto. Nombre no vacío y tipo venta|deposito; cualquier
// otra cosa es entrada inválida. No crea filas de stock: se crean de forma
// diferida con el primer ajuste/transferencia, o con InicializarStock.
func (uc *PuntosUseCase) Crear(ctx context.Context, in dto.CrearPuntoRequest) (*dto.PuntoResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if !entity.TipoValido(in.Tipo) {
		return nil, fmt.Errorf("%w: tipo debe ser %q o %q", domain.ErrInvalidInput, entity.PuntoTipoVenta, entity.PuntoTipoDeposito)
	}
	activo := true
	if in.Activo != nil {
		activo = *in.Activo
	}
	now := uc.ahora()
	punto := &entity.Punto{
		Nombre:               in.Nombre,
		Tipo:                 in.Tipo,
		Descripcion:          in.Descripcion,
		Direccion:            in.Direccion,
		Telefono:             in.Telefono,
		Email:                in.Email,
		Activo:               activo,
		PermiteVentasOnline:  in.PermiteVentasOnline,
		ManejaStockFisico:    in.ManejaStockFisico,
		RequiereAutorizacion: in.RequiereAutorizacion,
		FechaCreacion:        now,
		FechaActualizacion:   now,
	}
	if err := uc.repo.Crear(ctx, punto); err != nil {
		return nil, err
	}
	uc.cache.Invalidar("puntos")
	uc.cache.Invalidar("matriz")
	return toPuntoResponse(punto), nil
}

// ObtenerPorID devuelve un punto o ErrNotFound.
func (uc *PuntosUseCase) ObtenerPorID(ctx context.Context, id int64) (*dto.PuntoResponse, error) {
	punto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if punto == nil {
		return nil, fmt.Errorf("%w: punto %d", domain.ErrNotFound, id)
	}
	return toPuntoResponse(punto), nil
}

// Actualizar aplica cambios parciales. El tipo es inmutable: si viene en el
// request se rechaza, aunque repita el valor actual, para que el contrato no
// dependa del estado.
func (uc *PuntosUseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarPuntoRequest) (*dto.PuntoResponse, error) {
	if in.Tipo != nil {
		return nil, fmt.Errorf("%w: el tipo de un punto no se puede modificar", domain.ErrInvalidInput)
	}
	if in.Nombre != nil && *in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre no puede quedar vacío", domain.ErrInvalidInput)
	}
	punto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if punto == nil {
		return nil, fmt.Errorf("%w: punto %d", domain.ErrNotFound, id)
	}
	if in.Nombre != nil {
		punto.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		punto.Descripcion = *in.Descripcion
	}
	if in.Direccion != nil {
		punto.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		punto.Telefono = *in.Telefono
	}
	if in.Email != nil {
		punto.Email = *in.Email
	}
	if in.Activo != nil {
		punto.Activo = *in.Activo
	}
	if in.PermiteVentasOnline != nil {
		punto.PermiteVentasOnline = *in.PermiteVentasOnline
	}
	if in.ManejaStockFisico != nil {
		punto.ManejaStockFisico = *in.ManejaStockFisico
	}
	if in.RequiereAutorizacion != nil {
		punto.RequiereAutorizacion = *in.RequiereAutorizacion
	}
	punto.FechaActualizacion = uc.ahora()
	if err := uc.repo.Actualizar(ctx, punto); err != nil {
		return nil, err
	}
	uc.cache.Invalidar("puntos")
	uc.cache.Invalidar("matriz")
	return toPuntoResponse(punto), nil
}

// Desactivar es el reemplazo de la eliminación: el punto queda inactivo y
// fuera de la matriz, pero su historial de movimientos se conserva.
func (uc *PuntosUseCase) Desactivar(ctx context.Context, id int64) error {
	punto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return err
	}
	if punto == nil {
		return fmt.Errorf("%w: punto %d", domain.ErrNotFound, id)
	}
	if !punto.Activo {
		return nil // ya estaba inactivo, operación idempotente
	}
	punto.Activo = false
	punto.FechaActualizacion = uc.ahora()
	if err := uc.repo.Actualizar(ctx, punto); err != nil {
		return err
	}
	uc.cache.Invalidar("puntos")
	uc.cache.Invalidar("matriz")
	return nil
}

// Listar devuelve puntos en orden de creación, con filtros opcionales.
func (uc *PuntosUseCase) Listar(ctx context.Context, filtros repository.FiltrosPuntos) (*dto.PuntoListResponse, error) {
	filtros.Busqueda = textutil.Normalizar(filtros.Busqueda)
	if filtros.Limite <= 0 {
		filtros.Limite = 20
	}
	if filtros.Limite > 100 {
		filtros.Limite = 100
	}
	if filtros.Offset < 0 {
		filtros.Offset = 0
	}

	clave := cache.Clave("puntosListar", filtros)
	if v, ok := uc.cache.Obtener(clave); ok {
		if resp, ok := v.(*dto.PuntoListResponse); ok {
			return resp, nil
		}
	}

	lista, total, err := uc.repo.Listar(ctx, filtros)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PuntoResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, *toPuntoResponse(p))
	}
	resp := &dto.PuntoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtros.Limite, Offset: filtros.Offset, Total: total},
	}
	uc.cache.Guardar(clave, resp)
	return resp, nil
}

// InicializarStock crea filas de stock en cero para todos los artículos del
// catálogo que no tienen entrada en el punto. Pensado para puntos recién
// creados, así la grilla de inventario muestra el catálogo completo.
func (uc *PuntosUseCase) InicializarStock(ctx context.Context, id int64) (*dto.InicializarStockResponse, error) {
	punto, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if punto == nil {
		return nil, fmt.Errorf("%w: punto %d", domain.ErrNotFound, id)
	}
	n, err := uc.stockRepo.InicializarFaltantes(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidar("stock")
	uc.cache.Invalidar("matriz")
	return &dto.InicializarStockResponse{
		Mensaje:                fmt.Sprintf("stock inicializado para %q", punto.Nombre),
		ArticulosInicializados: n,
	}, nil
}

func toPuntoResponse(p *entity.Punto) *dto.PuntoResponse {
	if p == nil {
		return nil
	}
	return &dto.PuntoResponse{
		ID:                   p.ID,
		Nombre:               p.Nombre,
		Tipo:                 p.Tipo,
		Descripcion:          p.Descripcion,
		Direccion:            p.Direccion,
		Telefono:             p.Telefono,
		Email:                p.Email,
		Activo:               p.Activo,
		PermiteVentasOnline:  p.PermiteVentasOnline,
		ManejaStockFisico:    p.ManejaStockFisico,
		RequiereAutorizacion: p.RequiereAutorizacion,
		FechaCreacion:        p.FechaCreacion,
		FechaActualizacion:   p.FechaActualizacion,
	}
}
