package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AjustarStockRequest body para POST /api/stock/ajustar.
// NuevaCantidad es la cantidad total final, no un delta: quien quiera sumar
// debe leer la cantidad actual primero (o usar /api/stock/incrementar).
type AjustarStockRequest struct {
	PuntoID       int64           `json:"punto_id"`
	ArticuloID    int64           `json:"articulo_id"`
	NuevaCantidad decimal.Decimal `json:"nueva_cantidad"`
	Motivo        string          `json:"motivo,omitempty"`
}

// IncrementarStockRequest body para POST /api/stock/incrementar.
type IncrementarStockRequest struct {
	PuntoID    int64           `json:"punto_id"`
	ArticuloID int64           `json:"articulo_id"`
	Delta      decimal.Decimal `json:"delta"`
	Motivo     string          `json:"motivo,omitempty"`
}

// TransferirStockRequest body para POST /api/stock/transferir.
type TransferirStockRequest struct {
	PuntoOrigenID  int64           `json:"punto_origen_id"`
	PuntoDestinoID int64           `json:"punto_destino_id"`
	ArticuloID     int64           `json:"articulo_id"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Motivo         string          `json:"motivo,omitempty"`
}

// ArticuloResumen resumen de catálogo embebido en respuestas de stock.
type ArticuloResumen struct {
	ID          int64           `json:"id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Rubro       string          `json:"rubro"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

// StockPuntoResponse una entrada de stock (punto, artículo).
type StockPuntoResponse struct {
	PuntoID            int64            `json:"punto_id"`
	ArticuloID         int64            `json:"articulo_id"`
	Cantidad           decimal.Decimal  `json:"cantidad"`
	StockMinimo        decimal.Decimal  `json:"stock_minimo"`
	FechaActualizacion time.Time        `json:"fecha_actualizacion"`
	Articulo           *ArticuloResumen `json:"articulo,omitempty"`
}

// StockPuntoListResponse stock de un punto, paginado.
type StockPuntoListResponse struct {
	Items []StockPuntoResponse `json:"stock"`
	Page  PageResponse         `json:"page"`
}

// TransferenciaResponse resultado de una transferencia: ambas entradas ya
// confirmadas por el servidor, para aplicar sobre el estado local sin adivinar.
type TransferenciaResponse struct {
	Origen       StockPuntoResponse `json:"origen"`
	Destino      StockPuntoResponse `json:"destino"`
	MovimientoID string             `json:"movimiento_id"`
}

// StockPorPunto un componente del vector de distribución de la matriz.
type StockPorPunto struct {
	PuntoID     int64           `json:"punto_id"`
	PuntoNombre string          `json:"punto_nombre"`
	Cantidad    decimal.Decimal `json:"cantidad"`
}

// FilaMatrizStock fila de la matriz de distribución: total por artículo más el
// vector completo por punto activo, con ceros explícitos para que la UI pueda
// renderizar "0" en lugar de celda vacía.
type FilaMatrizStock struct {
	ArticuloID    int64           `json:"articulo_id"`
	Codigo        string          `json:"codigo"`
	Descripcion   string          `json:"descripcion"`
	Rubro         string          `json:"rubro"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	CantidadTotal decimal.Decimal `json:"cantidad_total"`
	Distribucion  []StockPorPunto `json:"distribucion"`
}

// MatrizStockResponse respuesta de la matriz de distribución.
type MatrizStockResponse struct {
	Filas  []FilaMatrizStock `json:"filas"`
	Puntos []PuntoResponse   `json:"puntos"`
}

// EstadisticasResponse resumen del tablero de puntos mudras.
type EstadisticasResponse struct {
	TotalPuntos          int             `json:"total_puntos"`
	PuntosVenta          int             `json:"puntos_venta"`
	Depositos            int             `json:"depositos"`
	PuntosActivos        int             `json:"puntos_activos"`
	ArticulosConStock    int             `json:"articulos_con_stock"`
	ValorTotalInventario decimal.Decimal `json:"valor_total_inventario"`
	MovimientosHoy       int             `json:"movimientos_hoy"`
}
