package entity

import "github.com/shopspring/decimal"

// Articulo resumen del catálogo de artículos. El catálogo es un colaborador
// externo: acá solo se consulta, nunca se muta.
type Articulo struct {
	ID          int64
	Codigo      string
	Descripcion string
	Rubro       string
	Proveedor   string
	PrecioVenta decimal.Decimal
}
