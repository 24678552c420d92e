package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/retail-pos-api/internal/application/analytics"
	"github.com/jhoicas/retail-pos-api/internal/application/auth"
	"github.com/jhoicas/retail-pos-api/internal/application/sale"
	"github.com/jhoicas/retail-pos-api/internal/application/usecase"
	"github.com/jhoicas/retail-pos-api/internal/infrastructure/mongostore"
	httpRouter "github.com/jhoicas/retail-pos-api/internal/interfaces/http"
	"github.com/jhoicas/retail-pos-api/pkg/config"
	"github.com/jhoicas/retail-pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	client, err := mongostore.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("desconexión de MongoDB")
		}
	}()
	db := client.Database(cfg.Mongo.Database)

	userRepo := mongostore.NewUserRepository(db)
	inventoryRepo := mongostore.NewInventoryRepository(db)
	saleRepo := mongostore.NewSaleRepository(db)
	supplierRepo := mongostore.NewSupplierRepository(db)
	categoryRepo := mongostore.NewCategoryRepository(db)
	customerRepo := mongostore.NewCustomerRepository(db)

	if err := auth.SeedDefaultAccounts(ctx, userRepo, log); err != nil {
		log.Error().Err(err).Msg("siembra de cuentas por defecto")
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	saleUC := sale.NewUseCase(saleRepo, inventoryRepo)
	analyticsUC := analytics.NewUseCase(saleRepo, userRepo, customerRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, inventoryRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		SaleUC:        saleUC,
		AnalyticsUC:   analyticsUC,
		InventoryUC:   inventoryUC,
		SupplierUC:    supplierUC,
		CategoryUC:    categoryUC,
		UserUC:        userUC,
		CustomerUC:    customerUC,
		JWTSecret:     cfg.JWT.Secret,
		JWTExpMinutes: cfg.JWT.Expiration,
	})
	httpRouter.RegisterPages(app, cfg.App.WebDir)

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
