package dto

import "time"

// CrearPuntoRequest entrada para crear un punto mudras.
type CrearPuntoRequest struct {
	Nombre               string `json:"nombre" validate:"required,min=1,max=200"`
	Tipo                 string `json:"tipo" validate:"required,oneof=venta deposito"`
	Descripcion          string `json:"descripcion"`
	Direccion            string `json:"direccion"`
	Telefono             string `json:"telefono"`
	Email                string `json:"email"`
	Activo               *bool  `json:"activo"`
	PermiteVentasOnline  bool   `json:"permite_ventas_online"`
	ManejaStockFisico    bool   `json:"maneja_stock_fisico"`
	RequiereAutorizacion bool   `json:"requiere_autorizacion"`
}

// ActualizarPuntoRequest entrada parcial para actualizar un punto.
// Tipo se declara solo para poder rechazarlo: el tipo es inmutable.
type ActualizarPuntoRequest struct {
	Nombre               *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Tipo                 *string `json:"tipo"`
	Descripcion          *string `json:"descripcion"`
	Direccion            *string `json:"direccion"`
	Telefono             *string `json:"telefono"`
	Email                *string `json:"email"`
	Activo               *bool   `json:"activo"`
	PermiteVentasOnline  *bool   `json:"permite_ventas_online"`
	ManejaStockFisico    *bool   `json:"maneja_stock_fisico"`
	RequiereAutorizacion *bool   `json:"requiere_autorizacion"`
}

// PuntoResponse salida de un punto mudras.
type PuntoResponse struct {
	ID                   int64     `json:"id"`
	Nombre               string    `json:"nombre"`
	Tipo                 string    `json:"tipo"`
	Descripcion          string    `json:"descripcion"`
	Direccion            string    `json:"direccion"`
	Telefono             string    `json:"telefono,omitempty"`
	Email                string    `json:"email,omitempty"`
	Activo               bool      `json:"activo"`
	PermiteVentasOnline  bool      `json:"permite_ventas_online"`
	ManejaStockFisico    bool      `json:"maneja_stock_fisico"`
	RequiereAutorizacion bool      `json:"requiere_autorizacion"`
	FechaCreacion        time.Time `json:"fecha_creacion"`
	FechaActualizacion   time.Time `json:"fecha_actualizacion"`
}

// PuntoListResponse lista paginada de puntos.
type PuntoListResponse struct {
	Items []PuntoResponse `json:"puntos"`
	Page  PageResponse    `json:"page"`
}

// InicializarStockResponse resultado de inicializar el stock de un punto.
type InicializarStockResponse struct {
	Mensaje                string `json:"mensaje"`
	ArticulosInicializados int    `json:"articulos_inicializados"`
}
