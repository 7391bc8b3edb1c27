package entity

import "time"

// Tipos de punto mudras. El tipo es inmutable después de la creación.
const (
	PuntoTipoVenta    = "venta"    // local de venta al público
	PuntoTipoDeposito = "deposito" // depósito / bodega
)

// Punto representa un punto de venta o depósito que mantiene stock propio.
// La baja es lógica: Activo pasa a false, nunca se borra la fila.
type Punto struct {
	ID                   int64
	Nombre               string
	Tipo                 string
	Descripcion          string
	Direccion            string
	Telefono             string
	Email                string
	Activo               bool
	PermiteVentasOnline  bool
	ManejaStockFisico    bool
	RequiereAutorizacion bool
	FechaCreacion        time.Time
	FechaActualizacion   time.Time
}

// TipoValido verifica que el tipo sea uno de los dos valores permitidos.
func TipoValido(tipo string) bool {
	return tipo == PuntoTipoVenta || tipo == PuntoTipoDeposito
}
