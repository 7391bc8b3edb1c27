package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mudras/puntos-stock-api/internal/application/dto"
	"github.com/mudras/puntos-stock-api/internal/application/stock"
	"github.com/mudras/puntos-stock-api/internal/domain"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

// StockHandler maneja las peticiones HTTP del motor de stock: ajustes,
// transferencias, matriz de distribución, historial y estadísticas.
type StockHandler struct {
	uc     *stock.StockUseCase
	pdfGen stock.MatrizPDFGenerator
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase, pdfGen stock.MatrizPDFGenerator) *StockHandler {
	return &StockHandler{uc: uc, pdfGen: pdfGen}
}

// Ajustar godoc
// @Summary      Ajustar stock a una cantidad total absoluta
// @Description  nueva_cantidad es el total final, no un delta. El delta implícito queda en el historial; delta cero también se registra.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AjustarStockRequest  true  "punto_id, articulo_id, nueva_cantidad, motivo"
// @Success      200  {object}  dto.StockPuntoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/ajustar [post]
func (h *StockHandler) Ajustar(c *fiber.Ctx) error {
	var in dto.AjustarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Ajustar(c.Context(), stock.AjusteInput{
		PuntoID:       in.PuntoID,
		ArticuloID:    in.ArticuloID,
		NuevaCantidad: in.NuevaCantidad,
		Motivo:        in.Motivo,
		UsuarioID:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Incrementar godoc
// @Summary      Sumar un delta al stock
// @Description  Conveniencia sobre el ajuste absoluto: lee la cantidad actual y ajusta a actual+delta. Falla si el resultado queda negativo.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IncrementarStockRequest  true  "punto_id, articulo_id, delta (puede ser negativo), motivo"
// @Success      200  {object}  dto.StockPuntoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/incrementar [post]
func (h *StockHandler) Incrementar(c *fiber.Ctx) error {
	var in dto.IncrementarStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Incrementar(c.Context(), in.PuntoID, in.ArticuloID, in.Delta, in.Motivo, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Transferir godoc
// @Summary      Transferir stock entre puntos
// @Description  Resta del origen y suma al destino en una transacción; el total del artículo no cambia. Si no alcanza, responde 409 con el disponible.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferirStockRequest  true  "punto_origen_id, punto_destino_id, articulo_id, cantidad"
// @Success      200  {object}  dto.TransferenciaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock/transferir [post]
func (h *StockHandler) Transferir(c *fiber.Ctx) error {
	var in dto.TransferirStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Transferir(c.Context(), stock.TransferenciaInput{
		PuntoOrigenID:  in.PuntoOrigenID,
		PuntoDestinoID: in.PuntoDestinoID,
		ArticuloID:     in.ArticuloID,
		Cantidad:       in.Cantidad,
		Motivo:         in.Motivo,
		UsuarioID:      GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Matriz godoc
// @Summary      Matriz de distribución de stock
// @Description  Una fila por artículo con el total y el vector completo por punto activo (ceros incluidos).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        busqueda   query  string  false  "texto sobre código y descripción, sin distinguir acentos"
// @Param        rubro      query  string  false  "filtrar por rubro"
// @Param        proveedor  query  string  false  "filtrar por proveedor"
// @Success      200  {object}  dto.MatrizStockResponse
// @Router       /api/stock/matriz [get]
func (h *StockHandler) Matriz(c *fiber.Ctx) error {
	resp, err := h.uc.Matriz(c.Context(), filtrosArticulos(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// MatrizPDF godoc
// @Summary      Matriz de distribución en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        busqueda   query  string  false  "texto sobre código y descripción"
// @Param        rubro      query  string  false  "filtrar por rubro"
// @Param        proveedor  query  string  false  "filtrar por proveedor"
// @Success      200  {file}  binary
// @Router       /api/stock/matriz/pdf [get]
func (h *StockHandler) MatrizPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.MatrizPDF(c.Context(), filtrosArticulos(c), h.pdfGen)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="matriz-stock-%s.pdf"`, time.Now().Format("2006-01-02")))
	return c.Send(pdfBytes)
}

// StockDePunto godoc
// @Summary      Stock de un punto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id        path   int     true   "id del punto"
// @Param        busqueda  query  string  false  "texto sobre código y descripción del artículo"
// @Param        rubro     query  string  false  "filtrar por rubro"
// @Param        limit     query  int     false  "máximo de filas (default 50)"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {object}  dto.StockPuntoListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/puntos/{id}/stock [get]
func (h *StockHandler) StockDePunto(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	page, err := parsePagina(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.StockDePunto(c.Context(), id, repository.FiltrosStock{
		Busqueda: c.Query("busqueda"),
		Rubro:    c.Query("rubro"),
		Limite:   page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Movimientos godoc
// @Summary      Historial de movimientos de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        punto_id     query  int     false  "coincide contra origen o destino"
// @Param        articulo_id  query  int     false  "filtrar por artículo"
// @Param        tipo         query  string  false  "ajuste|transferencia|entrada|salida|venta|devolucion"
// @Param        desde        query  string  false  "RFC 3339"
// @Param        hasta        query  string  false  "RFC 3339"
// @Param        limit        query  int     false  "máximo de filas (default 50)"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {object}  dto.MovimientoListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/movimientos [get]
func (h *StockHandler) Movimientos(c *fiber.Ctx) error {
	page, err := parsePagina(c)
	if err != nil {
		return respondError(c, err)
	}
	filtros := repository.FiltrosMovimientos{
		Tipo:   c.Query("tipo"),
		Limite: page.Limit,
		Offset: page.Offset,
	}
	if raw := c.QueryInt("punto_id"); raw > 0 {
		id := int64(raw)
		filtros.PuntoID = &id
	}
	if raw := c.QueryInt("articulo_id"); raw > 0 {
		id := int64(raw)
		filtros.ArticuloID = &id
	}
	if filtros.Desde, err = parseFecha(c.Query("desde")); err != nil {
		return respondError(c, err)
	}
	if filtros.Hasta, err = parseFecha(c.Query("hasta")); err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.Movimientos(c.Context(), filtros)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Estadisticas godoc
// @Summary      Resumen del tablero de puntos mudras
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EstadisticasResponse
// @Router       /api/stock/estadisticas [get]
func (h *StockHandler) Estadisticas(c *fiber.Ctx) error {
	resp, err := h.uc.Estadisticas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

func filtrosArticulos(c *fiber.Ctx) repository.FiltrosArticulos {
	return repository.FiltrosArticulos{
		Busqueda:  c.Query("busqueda"),
		Rubro:     c.Query("rubro"),
		Proveedor: c.Query("proveedor"),
	}
}

func parseFecha(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q, se espera RFC 3339", domain.ErrInvalidInput, raw)
	}
	return &t, nil
}
