// @title        BizPanel API
// @version      1.0
// @description  API del panel de negocio: productos, pedidos, clientes y dashboard.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/bizpanel-api/docs"
	appanalytics "github.com/jhoicas/bizpanel-api/internal/application/analytics"
	"github.com/jhoicas/bizpanel-api/internal/application/auth"
	"github.com/jhoicas/bizpanel-api/internal/application/seed"
	"github.com/jhoicas/bizpanel-api/internal/application/usecase"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvrepo"
	infrapdf "github.com/jhoicas/bizpanel-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/bizpanel-api/internal/interfaces/http"
	"github.com/jhoicas/bizpanel-api/pkg/config"
	"github.com/jhoicas/bizpanel-api/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// run cierra el store antes de volver, también cuando falla.
	if err := run(cfg, log, quit); err != nil {
		log.Error().Err(err).Msg("aplicación finalizada con error")
		os.Exit(1)
	}
	log.Info().Msg("aplicación detenida")
}

// run arma las dependencias, sirve HTTP hasta recibir una señal en quit y apaga el servidor.
func run(cfg *config.Config, log *logger.Logger, quit <-chan os.Signal) error {
	ctx := context.Background()
	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento %s: %w", cfg.Store.Driver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()

	productRepo := kvrepo.NewProductRepository(store)
	orderRepo := kvrepo.NewOrderRepository(store)
	customerRepo := kvrepo.NewCustomerRepository(store)
	userRepo := kvrepo.NewUserRepository(store)

	seeder := seed.NewSeeder(customerRepo, productRepo, orderRepo, seed.Counts{
		Products: cfg.Seed.Products,
		Orders:   cfg.Seed.Orders,
	})
	// El directorio de clientes se siembra al arrancar; productos y pedidos en la primera visita de cada usuario.
	if err := seeder.EnsureCustomers(ctx); err != nil {
		return fmt.Errorf("sembrar clientes: %w", err)
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, customerRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, seeder)
	profileUC := usecase.NewProfileUseCase(userRepo, seeder)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, orderRepo, userRepo, seeder)
	exportUC := usecase.NewExportUseCase(productRepo, orderRepo)

	// PDF: comprobante del pedido
	receiptUC := usecase.NewReceiptUseCase(orderRepo, userRepo, infrapdf.NewReceiptGenerator())

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:        cfg.App.Name,
		Logger:      log,
		Metrics:     httpRouter.NewMetrics(),
		SwaggerFile: "./docs/swagger.json",
	}, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		OrderUC:     orderUC,
		CustomerUC:  customerUC,
		ProfileUC:   profileUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		ReceiptUC:   receiptUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	return nil
}
