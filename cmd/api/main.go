package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-ventas/internal/application/auth"
	"github.com/tu-usuario/crm-ventas/internal/application/catalog"
	"github.com/tu-usuario/crm-ventas/internal/application/crm"
	"github.com/tu-usuario/crm-ventas/internal/application/orders"
	"github.com/tu-usuario/crm-ventas/internal/infrastructure/mongodb"
	gqlapi "github.com/tu-usuario/crm-ventas/internal/interfaces/graphql"
	httpapi "github.com/tu-usuario/crm-ventas/internal/interfaces/http"
	"github.com/tu-usuario/crm-ventas/pkg/config"
	"github.com/tu-usuario/crm-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("crear índices")
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.Expiration,
		Issuer:   cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewUseCase(productRepo, serviceRepo)
	crmUC := crm.NewUseCase(clientRepo)
	ordersUC := orders.NewUseCase(orderRepo, clientRepo, productRepo, log)

	schema, err := gqlapi.NewSchema(&gqlapi.Resolver{
		Auth:    authUC,
		Catalog: catalogUC,
		CRM:     crmUC,
		Orders:  ordersUC,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("construir esquema GraphQL")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	httpapi.Router(app, httpapi.RouterDeps{
		Schema:    schema,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()
	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor GraphQL listo")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
