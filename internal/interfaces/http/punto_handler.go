package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/mudras/puntos-stock-api/internal/application/dto"
	"github.com/mudras/puntos-stock-api/internal/application/puntos"
	"github.com/mudras/puntos-stock-api/internal/domain/repository"
)

// PuntoHandler maneja las peticiones HTTP del registro de puntos mudras.
type PuntoHandler struct {
	uc *puntos.PuntosUseCase
}

// NewPuntoHandler construye el handler.
func NewPuntoHandler(uc *puntos.PuntosUseCase) *PuntoHandler {
	return &PuntoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear punto mudras
// @Tags         puntos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPuntoRequest  true  "nombre, tipo (venta|deposito) y datos de contacto"
// @Success      201   {object}  dto.PuntoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/puntos [post]
func (h *PuntoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearPuntoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Listar godoc
// @Summary      Listar puntos mudras
// @Tags         puntos
// @Security     Bearer
// @Produce      json
// @Param        tipo      query  string  false  "venta | deposito"
// @Param        activo    query  bool    false  "filtrar por estado"
// @Param        busqueda  query  string  false  "texto sobre nombre y descripción, sin distinguir acentos"
// @Param        limit     query  int     false  "máximo de filas (default 20)"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {object}  dto.PuntoListResponse
// @Router       /api/puntos [get]
func (h *PuntoHandler) Listar(c *fiber.Ctx) error {
	page, err := parsePagina(c)
	if err != nil {
		return respondError(c, err)
	}
	page.DefaultPage()
	filtros := repository.FiltrosPuntos{
		Busqueda: c.Query("busqueda"),
		Limite:   page.Limit,
		Offset:   page.Offset,
	}
	if tipo := c.Query("tipo"); tipo != "" {
		filtros.Tipo = &tipo
	}
	if raw := c.Query("activo"); raw != "" {
		activo, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "activo debe ser true o false"})
		}
		filtros.Activo = &activo
	}
	resp, err := h.uc.Listar(c.Context(), filtros)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ObtenerPorID godoc
// @Summary      Obtener punto por id
// @Tags         puntos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id del punto"
// @Success      200  {object}  dto.PuntoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/puntos/{id} [get]
func (h *PuntoHandler) ObtenerPorID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.ObtenerPorID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Actualizar godoc
// @Summary      Actualizar punto (parcial; el tipo es inmutable)
// @Tags         puntos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                         true  "id del punto"
// @Param        body  body  dto.ActualizarPuntoRequest  true  "campos a modificar"
// @Success      200  {object}  dto.PuntoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/puntos/{id} [put]
func (h *PuntoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ActualizarPuntoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Desactivar godoc
// @Summary      Desactivar punto (baja lógica)
// @Description  El punto queda inactivo y fuera de la matriz; el historial de movimientos se conserva.
// @Tags         puntos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id del punto"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/puntos/{id} [delete]
func (h *PuntoHandler) Desactivar(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Desactivar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "punto desactivado"})
}

// InicializarStock godoc
// @Summary      Inicializar stock del punto en cero
// @Description  Crea entradas en cero para cada artículo del catálogo sin fila en el punto.
// @Tags         puntos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id del punto"
// @Success      200  {object}  dto.InicializarStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/puntos/{id}/inicializar-stock [post]
func (h *PuntoHandler) InicializarStock(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.uc.InicializarStock(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
