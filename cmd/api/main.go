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

	"github.com/jhoicas/Inventario-conciliacion/internal/bootstrap"
	httpRouter "github.com/jhoicas/Inventario-conciliacion/internal/interfaces/http"
	"github.com/jhoicas/Inventario-conciliacion/pkg/config"
	"github.com/jhoicas/Inventario-conciliacion/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Backend.Source).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	svc, err := bootstrap.Wire(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servicios")
	}
	defer svc.Close()

	// Los historiales olvidan lo cacheado cuando un material cambia en el backend.
	go svc.History.Follow(ctx, svc.Events.StockUpdates)

	var bulkHandler *httpRouter.BulkHandler
	if svc.Deleter != nil {
		bulkHandler = httpRouter.NewBulkHandler(ctx, svc.Bulk, svc.Deleter, svc.Events, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Conciliación API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		History:   httpRouter.NewHistoryHandler(svc.History),
		Status:    httpRouter.NewStatusHandler(svc.Status),
		Bulk:      bulkHandler,
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

	// Detiene la operación masiva en el siguiente límite entre unidades y cierra los streams SSE.
	stop()
	svc.Events.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
