package stock

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mudras/puntos-stock-api/internal/application/cache"
	"github.com/mudras/puntos-stock-api/internal/application/dto"
	"github.com/mudras/puntos-stock-api/internal/domain"
	"github.com/mudras/puntos-stock-api/internal/domain/entity"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
	"github.com/mudras/puntos-stock-api/pkg/textutil"
)

// Matriz arma la matriz de distribución: una fila por artículo que cumple los
// filtros, con el total y el vector completo por punto activo (ceros
// incluidos, para que la UI muestre "0" y no celda vacía). Es una proyección
// de solo lectura: no muta stock y es segura de recomputar.
func (uc *StockUseCase) Matriz(ctx context.Context, filtros repository.FiltrosArticulos) (*dto.MatrizStockResponse, error) {
	filtros.Busqueda = textutil.Normalizar(filtros.Busqueda)

	clave := cache.Clave("matriz", filtros)
	if v, ok := uc.cache.Obtener(clave); ok {
		if resp, ok := v.(*dto.MatrizStockResponse); ok {
			return resp, nil
		}
	}

	puntos, err := uc.puntoRepo.ListarActivos(ctx)
	if err != nil {
		return nil, err
	}
	articulos, err := uc.articuloRepo.Buscar(ctx, filtros)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(articulos))
	for _, a := range articulos {
		ids = append(ids, a.ID)
	}
	entradas, err := uc.stockRepo.ListarPorArticulos(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Índice (artículo, punto) -> cantidad. Las entradas de puntos inactivos
	// no suman al total ni aparecen en el vector.
	activos := make(map[int64]bool, len(puntos))
	for _, p := range puntos {
		activos[p.ID] = true
	}
	porClave := make(map[[2]int64]decimal.Decimal, len(entradas))
	for _, e := range entradas {
		if activos[e.PuntoID] {
			porClave[[2]int64{e.ArticuloID, e.PuntoID}] = e.Cantidad
		}
	}

	filas := make([]dto.FilaMatrizStock, 0, len(articulos))
	for _, a := range articulos {
		fila := dto.FilaMatrizStock{
			ArticuloID:    a.ID,
			Codigo:        a.Codigo,
			Descripcion:   a.Descripcion,
			Rubro:         a.Rubro,
			PrecioVenta:   a.PrecioVenta,
			CantidadTotal: decimal.Zero,
			Distribucion:  make([]dto.StockPorPunto, 0, len(puntos)),
		}
		for _, p := range puntos {
			cantidad := porClave[[2]int64{a.ID, p.ID}]
			fila.CantidadTotal = fila.CantidadTotal.Add(cantidad)
			fila.Distribucion = append(fila.Distribucion, dto.StockPorPunto{
				PuntoID:     p.ID,
				PuntoNombre: p.Nombre,
				Cantidad:    cantidad,
			})
		}
		filas = append(filas, fila)
	}

	puntosResp := make([]dto.PuntoResponse, 0, len(puntos))
	for _, p := range puntos {
		puntosResp = append(puntosResp, dto.PuntoResponse{
			ID: p.ID, Nombre: p.Nombre, Tipo: p.Tipo, Activo: p.Activo,
			FechaCreacion: p.FechaCreacion, FechaActualizacion: p.FechaActualizacion,
		})
	}
	resp := &dto.MatrizStockResponse{Filas: filas, Puntos: puntosResp}
	uc.cache.Guardar(clave, resp)
	return resp, nil
}

// MatrizPDF genera el reporte imprimible de la matriz con los mismos filtros.
func (uc *StockUseCase) MatrizPDF(ctx context.Context, filtros repository.FiltrosArticulos, gen MatrizPDFGenerator) ([]byte, error) {
	matriz, err := uc.Matriz(ctx, filtros)
	if err != nil {
		return nil, err
	}
	puntos, err := uc.puntoRepo.ListarActivos(ctx)
	if err != nil {
		return nil, err
	}
	return gen.GenerarMatrizPDF(ctx, matriz.Filas, puntos, uc.ahora())
}

// StockDePunto lista las entradas de stock de un punto junto con el resumen
// de cada artículo, para la grilla de inventario del punto.
func (uc *StockUseCase) StockDePunto(ctx context.Context, puntoID int64, filtros repository.FiltrosStock) (*dto.StockPuntoListResponse, error) {
	if err := uc.verificarPunto(ctx, puntoID); err != nil {
		return nil, err
	}
	filtros.Busqueda = textutil.Normalizar(filtros.Busqueda)
	if filtros.Limite <= 0 {
		filtros.Limite = 50
	}
	if filtros.Limite > 200 {
		filtros.Limite = 200
	}
	if filtros.Offset < 0 {
		filtros.Offset = 0
	}

	clave := cache.Clave("stockPunto", struct {
		PuntoID int64
		F       repository.FiltrosStock
	}{puntoID, filtros})
	if v, ok := uc.cache.Obtener(clave); ok {
		if resp, ok := v.(*dto.StockPuntoListResponse); ok {
			return resp, nil
		}
	}

	entradas, total, err := uc.stockRepo.ListarPorPunto(ctx, puntoID, filtros)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockPuntoResponse, 0, len(entradas))
	for _, e := range entradas {
		items = append(items, *toStockResponse(&e.StockPunto, &e.Articulo))
	}
	resp := &dto.StockPuntoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtros.Limite, Offset: filtros.Offset, Total: total},
	}
	uc.cache.Guardar(clave, resp)
	return resp, nil
}

// Movimientos devuelve el historial con filtros y paginación.
func (uc *StockUseCase) Movimientos(ctx context.Context, filtros repository.FiltrosMovimientos) (*dto.MovimientoListResponse, error) {
	if filtros.Tipo != "" && !tipoMovimientoValido(filtros.Tipo) {
		return nil, fmt.Errorf("%w: tipo de movimiento desconocido %q", domain.ErrInvalidInput, filtros.Tipo)
	}
	if filtros.Limite <= 0 {
		filtros.Limite = 50
	}
	if filtros.Limite > 200 {
		filtros.Limite = 200
	}
	if filtros.Offset < 0 {
		filtros.Offset = 0
	}

	clave := cache.Clave("movimientos", filtros)
	if v, ok := uc.cache.Obtener(clave); ok {
		if resp, ok := v.(*dto.MovimientoListResponse); ok {
			return resp, nil
		}
	}

	lista, total, err := uc.movRepo.Listar(ctx, filtros)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(lista))
	for _, m := range lista {
		items = append(items, dto.MovimientoResponse{
			ID:                 m.ID,
			Tipo:               m.Tipo,
			ArticuloID:         m.ArticuloID,
			ArticuloCodigo:     m.ArticuloCodigo,
			ArticuloDesc:       m.ArticuloDescripcion,
			PuntoOrigenID:      m.PuntoOrigenID,
			PuntoOrigenNombre:  m.PuntoOrigenNombre,
			PuntoDestinoID:     m.PuntoDestinoID,
			PuntoDestinoNombre: m.PuntoDestinoNombre,
			Cantidad:           m.Cantidad,
			CantidadAnterior:   m.CantidadAnterior,
			CantidadNueva:      m.CantidadNueva,
			Motivo:             m.Motivo,
			ReferenciaExterna:  m.ReferenciaExterna,
			UsuarioID:          m.UsuarioID,
			FechaMovimiento:    m.FechaMovimiento,
		})
	}
	resp := &dto.MovimientoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filtros.Limite, Offset: filtros.Offset, Total: total},
	}
	uc.cache.Guardar(clave, resp)
	return resp, nil
}

// Estadisticas devuelve el resumen agregado del tablero.
func (uc *StockUseCase) Estadisticas(ctx context.Context) (*dto.EstadisticasResponse, error) {
	clave := cache.Clave("estadisticas", nil)
	if v, ok := uc.cache.Obtener(clave); ok {
		if resp, ok := v.(*dto.EstadisticasResponse); ok {
			return resp, nil
		}
	}
	res, err := uc.estRepo.Resumen(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.EstadisticasResponse{
		TotalPuntos:          res.TotalPuntos,
		PuntosVenta:          res.PuntosVenta,
		Depositos:            res.Depositos,
		PuntosActivos:        res.PuntosActivos,
		ArticulosConStock:    res.ArticulosConStock,
		ValorTotalInventario: res.ValorTotalInventario,
		MovimientosHoy:       res.MovimientosHoy,
	}
	uc.cache.Guardar(clave, resp)
	return resp, nil
}

func tipoMovimientoValido(tipo string) bool {
	switch tipo {
	case entity.MovimientoAjuste, entity.MovimientoTransferencia,
		entity.MovimientoEntrada, entity.MovimientoSalida,
		entity.MovimientoVenta, entity.MovimientoDevolucion:
		return true
	}
	return false
}
