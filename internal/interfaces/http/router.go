package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mudras/puntos-stock-api/internal/application/puntos"
	"github.com/mudras/puntos-stock-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PuntosUC  *puntos.PuntosUseCase
	StockUC   *stock.StockUseCase
	PDFGen    stock.MatrizPDFGenerator
	JWTSecret string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token; las
// escrituras de stock además piden rol admin o deposito.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	puntoHandler := NewPuntoHandler(deps.PuntosUC)
	stockHandler := NewStockHandler(deps.StockUC, deps.PDFGen)

	// Puntos mudras
	puntosGroup := api.Group("/puntos")
	puntosGroup.Get("/", puntoHandler.Listar)
	puntosGroup.Post("/", puntoHandler.Crear)
	puntosGroup.Get("/:id", puntoHandler.ObtenerPorID)
	puntosGroup.Put("/:id", puntoHandler.Actualizar)
	puntosGroup.Delete("/:id", puntoHandler.Desactivar)
	puntosGroup.Post("/:id/inicializar-stock", puntoHandler.InicializarStock)
	puntosGroup.Get("/:id/stock", stockHandler.StockDePunto)

	// Stock: lecturas
	stockGroup := api.Group("/stock")
	stockGroup.Get("/matriz", stockHandler.Matriz)
	stockGroup.Get("/matriz/pdf", stockHandler.MatrizPDF)
	stockGroup.Get("/movimientos", stockHandler.Movimientos)
	stockGroup.Get("/estadisticas", stockHandler.Estadisticas)

	// Stock: escrituras (mutan inventario, restringidas por rol)
	escrituras := stockGroup.Group("/", RequireRole("admin", "deposito"))
	escrituras.Post("/ajustar", stockHandler.Ajustar)
	escrituras.Post("/incrementar", stockHandler.Incrementar)
	escrituras.Post("/transferir", stockHandler.Transferir)
}
