package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/bizpanel-api/internal/application/analytics"
	"github.com/jhoicas/bizpanel-api/internal/application/auth"
	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/usecase"
	"github.com/jhoicas/bizpanel-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	OrderUC     *usecase.OrderUseCase
	CustomerUC  *usecase.CustomerUseCase
	ProfileUC   *usecase.ProfileUseCase
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *usecase.ExportUseCase
	ReceiptUC   *usecase.ReceiptUseCase
	JWTSecret   string
}

// AppOptions configuración de la app Fiber.
// Logger y Metrics son opcionales; SwaggerFile vacío o inexistente deja /docs sin montar.
type AppOptions struct {
	Name        string
	Logger      *logger.Logger
	Metrics     *Metrics
	SwaggerFile string
}

// NewApp arma la app Fiber con middlewares, endpoints de plataforma y rutas de la API.
func NewApp(opts AppOptions, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      opts.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	if opts.Logger != nil {
		app.Use(RequestLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
		app.Get("/metrics", opts.Metrics.Handler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if opts.SwaggerFile != "" {
		if _, err := os.Stat(opts.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: opts.SwaggerFile,
				Path:     "docs",
				Title:    "BizPanel API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.Name})
	})
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "documentación no registrada"})
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (register y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", requireAuth, dashboardHandler.Summary)

	// Products (protegido). /export antes de /:id
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC, deps.ExportUC)
	products.Get("/export", productHandler.Export)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	api.Get("/catalog/categories", requireAuth, productHandler.Categories)

	// Orders (protegido)
	orders := api.Group("/orders", requireAuth)
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ExportUC, deps.ReceiptUC)
	orders.Get("/export", orderHandler.Export)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Customers (protegido, solo lectura)
	customers := api.Group("/customers", requireAuth)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Perfil del negocio (protegido)
	profile := api.Group("/profile", requireAuth)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	profile.Get("/", profileHandler.Get)
	profile.Put("/", profileHandler.Update)
	profile.Post("/onboarding", profileHandler.Onboarding)
}

// errorHandler responde con ErrorResponse los errores que escapan de los handlers (404 de ruta, panics recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "error interno"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: statusCode(code), Message: msg})
}

func statusCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		if status >= 500 {
			return "INTERNAL"
		}
		return "ERROR"
	}
}
