package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/mudras/puntos-stock-api/docs"
	appcache "github.com/mudras/puntos-stock-api/internal/application/cache"
	"github.com/mudras/puntos-stock-api/internal/application/puntos"
	"github.com/mudras/puntos-stock-api/internal/application/stock"
	infrapdf "github.com/mudras/puntos-stock-api/internal/infrastructure/pdf"
	"github.com/mudras/puntos-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/mudras/puntos-stock-api/internal/interfaces/http"
	"github.com/mudras/puntos-stock-api/pkg/config"
	"github.com/mudras/puntos-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	puntoRepo := postgres.NewPuntoRepository(pool)
	articuloRepo := postgres.NewArticuloRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	estRepo := postgres.NewEstadisticasRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ttl := appcache.TTLPorDefecto
	if cfg.Cache.TTLMinutos > 0 {
		ttl = time.Duration(cfg.Cache.TTLMinutos) * time.Minute
	}
	cache := appcache.New(ttl, nil)

	puntosUC := puntos.NewPuntosUseCase(puntoRepo, stockRepo, cache, nil)
	stockUC := stock.NewStockUseCase(txRunner, puntoRepo, articuloRepo, stockRepo, movRepo, estRepo, cache, nil)
	pdfGen := infrapdf.NewMarotoMatrizReport()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Puntos Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PuntosUC:  puntosUC,
		StockUC:   stockUC,
		PDFGen:    pdfGen,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
