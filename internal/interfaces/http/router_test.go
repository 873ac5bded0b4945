package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizpanel-api/internal/application/analytics"
	"github.com/jhoicas/bizpanel-api/internal/application/auth"
	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/seed"
	"github.com/jhoicas/bizpanel-api/internal/application/usecase"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvrepo"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/bizpanel-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/bizpanel-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newTestApp arma la app completa sobre un store en memoria.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := kvstore.NewMemoryStore()
	products := kvrepo.NewProductRepository(store)
	orders := kvrepo.NewOrderRepository(store)
	customers := kvrepo.NewCustomerRepository(store)
	users := kvrepo.NewUserRepository(store)
	seeder := seed.NewSeeder(customers, products, orders, seed.Counts{Products: 5, Orders: 3})

	return apphttp.NewApp(apphttp.AppOptions{Name: "bizpanel-test", Metrics: apphttp.NewMetrics()}, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		ProductUC:   usecase.NewProductUseCase(products),
		OrderUC:     usecase.NewOrderUseCase(orders, products, customers),
		CustomerUC:  usecase.NewCustomerUseCase(customers, seeder),
		ProfileUC:   usecase.NewProfileUseCase(users, seeder),
		DashboardUC: analytics.NewDashboardUseCase(products, orders, users, seeder),
		ExportUC:    usecase.NewExportUseCase(products, orders),
		ReceiptUC:   usecase.NewReceiptUseCase(orders, users, pdf.NewReceiptGenerator()),
		JWTSecret:   testJWTSecret,
	})
}

type call struct {
	method  string
	path    string
	token   string
	body    any
	headers map[string]string
}

func do(t *testing.T, app *fiber.App, c call) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(c.method, c.path, rd)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

// signUp registra un usuario y devuelve su token.
func signUp(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := do(t, app, call{method: http.MethodPost, path: "/api/auth/register", body: fiber.Map{
		"name": "Dueño", "email": email, "password": "secreto1", "confirm_password": "secreto1",
	}})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = do(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: fiber.Map{
		"email": email, "password": "secreto1",
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	login := decode[dto.LoginResponse](t, body)
	require.NotEmpty(t, login.Token)
	return login.Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Plataforma
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	resp, body := do(t, newTestApp(t), call{method: http.MethodGet, path: "/health"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestMetrics_ExponeContadores(t *testing.T) {
	app := newTestApp(t)
	do(t, app, call{method: http.MethodGet, path: "/health"})

	resp, body := do(t, app, call{method: http.MethodGet, path: "/metrics"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "http_requests_total")
}

func TestRutaInexistente_Retorna404(t *testing.T) {
	resp, body := do(t, newTestApp(t), call{method: http.MethodGet, path: "/api/no-existe"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_RegistroYSesion(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodGet, path: "/api/auth/me", token: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.UserResponse](t, body)
	assert.Equal(t, "ana@ejemplo.com", me.Email)
	assert.False(t, me.OnboardingCompleted)
}

func TestAuth_RegistroDuplicado_Retorna409(t *testing.T) {
	app := newTestApp(t)
	signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodPost, path: "/api/auth/register", body: fiber.Map{
		"name": "Otra", "email": "ANA@ejemplo.com", "password": "secreto1", "confirm_password": "secreto1",
	}})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "EMAIL_EXISTS")
}

func TestAuth_PasswordsDistintas_Retorna400(t *testing.T) {
	resp, body := do(t, newTestApp(t), call{method: http.MethodPost, path: "/api/auth/register", body: fiber.Map{
		"name": "Ana", "email": "ana@ejemplo.com", "password": "secreto1", "confirm_password": "secreto2",
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "PASSWORD_MISMATCH")
}

func TestAuth_LoginIncorrecto_Retorna401(t *testing.T) {
	app := newTestApp(t)
	signUp(t, app, "ana@ejemplo.com")

	resp, _ := do(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: fiber.Map{
		"email": "ana@ejemplo.com", "password": "otra-clave",
	}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, app, call{method: http.MethodPost, path: "/api/auth/login", body: fiber.Map{
		"email": "nadie@ejemplo.com", "password": "secreto1",
	}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutasProtegidas_SinToken_Retornan401(t *testing.T) {
	app := newTestApp(t)
	for _, path := range []string{
		"/api/auth/me",
		"/api/dashboard/summary",
		"/api/products",
		"/api/catalog/categories",
		"/api/orders",
		"/api/customers",
		"/api/profile",
	} {
		resp, _ := do(t, app, call{method: http.MethodGet, path: path})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y siembra
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_PrimeraVisitaSiembra(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodGet, path: "/api/dashboard/summary", token: token})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	sum := decode[dto.DashboardSummaryDTO](t, body)
	assert.Equal(t, 5, sum.TotalProducts)
	assert.Equal(t, 3, sum.TotalOrders)
	assert.Len(t, sum.RecentOrders, 3)
	assert.Equal(t, 3, sum.OrdersByStatus.New+sum.OrdersByStatus.Processing+sum.OrdersByStatus.Completed)
	assert.True(t, sum.TotalRevenue.IsPositive())

	// Una segunda visita no vuelve a sembrar.
	_, body = do(t, app, call{method: http.MethodGet, path: "/api/dashboard/summary", token: token})
	again := decode[dto.DashboardSummaryDTO](t, body)
	assert.Equal(t, 5, again.TotalProducts)
	assert.Equal(t, 3, again.TotalOrders)
}

func TestCustomers_DirectorioCompartido(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodGet, path: "/api/customers", token: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.CustomerListResponse](t, body)
	require.Len(t, list.Items, seed.CustomerCount)

	resp, body = do(t, app, call{method: http.MethodGet, path: "/api/customers/" + list.Items[0].ID, token: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, list.Items[0].Name, decode[dto.CustomerResponse](t, body).Name)

	resp, _ = do(t, app, call{method: http.MethodGet, path: "/api/customers/no-existe", token: token})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CRUDYBusqueda(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodPost, path: "/api/products", token: token, body: fiber.Map{
		"name": "Café de Altura", "category": "Bebidas", "price": "12,50",
	}})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[dto.ProductResponse](t, body)
	assert.Equal(t, "12.5", created.Price.String())
	assert.NotEmpty(t, created.Image, "sin imagen se asigna la imagen por defecto")

	do(t, app, call{method: http.MethodPost, path: "/api/products", token: token, body: fiber.Map{
		"name": "Pan", "category": "Panadería", "price": 3,
	}})

	_, body = do(t, app, call{method: http.MethodGet, path: "/api/products?q=" + url.QueryEscape("CAFÉ"), token: token})
	found := decode[dto.ProductListResponse](t, body)
	require.Equal(t, 1, found.Total)
	assert.Equal(t, created.ID, found.Items[0].ID)

	resp, body = do(t, app, call{method: http.MethodPut, path: "/api/products/" + created.ID, token: token, body: fiber.Map{
		"name": "Café Especial", "category": "Bebidas", "price": 15,
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "Café Especial", decode[dto.ProductResponse](t, body).Name)

	resp, _ = do(t, app, call{method: http.MethodDelete, path: "/api/products/" + created.ID, token: token})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, app, call{method: http.MethodGet, path: "/api/products/" + created.ID, token: token})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, call{method: http.MethodDelete, path: "/api/products/" + created.ID, token: token})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_Validacion(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodPost, path: "/api/products", token: token, body: fiber.Map{
		"name": "Sin precio", "category": "Bebidas",
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")

	resp, _ = do(t, app, call{method: http.MethodPost, path: "/api/products", token: token, body: fiber.Map{
		"name": "Negativo", "category": "Bebidas", "price": -1,
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = do(t, app, call{method: http.MethodPost, path: "/api/products", token: token, body: fiber.Map{
		"name": "Gigante", "category": "Bebidas", "price": "1e999999999",
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestProducts_AisladosPorUsuario(t *testing.T) {
	app := newTestApp(t)
	ana := signUp(t, app, "ana@ejemplo.com")
	beto := signUp(t, app, "beto@ejemplo.com")

	_, body := do(t, app, call{method: http.MethodPost, path: "/api/products", token: ana, body: fiber.Map{
		"name": "Té", "category": "Bebidas", "price": 5,
	}})
	id := decode[dto.ProductResponse](t, body).ID

	resp, _ := do(t, app, call{method: http.MethodGet, path: "/api/products/" + id, token: beto})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalog_Categorias(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodGet, path: "/api/catalog/categories", token: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, decode[dto.CategoryListResponse](t, body).Items)
}

func TestProducts_ExportCSV(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")
	do(t, app, call{method: http.MethodPost, path: "/api/products", token: token, body: fiber.Map{
		"name": "Té", "category": "Bebidas", "price": 5,
	}})

	resp, body := do(t, app, call{method: http.MethodGet, path: "/api/products/export?format=csv", token: token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "productos.csv")
	assert.Contains(t, string(body), "Té")

	resp, _ = do(t, app, call{method: http.MethodGet, path: "/api/products/export?format=xml", token: token})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

type orderFixture struct {
	app        *fiber.App
	token      string
	customerID string
	productID  string
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	_, body := do(t, app, call{method: http.MethodGet, path: "/api/customers", token: token})
	customers := decode[dto.CustomerListResponse](t, body)
	require.NotEmpty(t, customers.Items)

	_, body = do(t, app, call{method: http.MethodPost, path: "/api/products", token: token, body: fiber.Map{
		"name": "Empanada", "category": "Comida", "price": "2.50",
	}})
	product := decode[dto.ProductResponse](t, body)

	return orderFixture{app: app, token: token, customerID: customers.Items[0].ID, productID: product.ID}
}

func (f orderFixture) create(t *testing.T, qty int) dto.OrderResponse {
	t.Helper()
	resp, body := do(t, f.app, call{method: http.MethodPost, path: "/api/orders", token: f.token, body: fiber.Map{
		"customer_id": f.customerID,
		"items":       []fiber.Map{{"product_id": f.productID, "quantity": qty}},
	}})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	return decode[dto.OrderResponse](t, body)
}

func TestOrders_CrearYConsultar(t *testing.T) {
	f := newOrderFixture(t)
	o := f.create(t, 4)

	assert.Equal(t, "new", o.Status)
	assert.Equal(t, "10", o.Total.String())
	assert.Equal(t, 4, o.ItemCount)
	assert.Equal(t, f.customerID, o.Customer.ID)

	resp, body := do(t, f.app, call{method: http.MethodGet, path: "/api/orders/" + o.ID, token: f.token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, o.ID, decode[dto.OrderResponse](t, body).ID)
}

func TestOrders_ClienteDesconocido_Retorna400(t *testing.T) {
	f := newOrderFixture(t)
	resp, _ := do(t, f.app, call{method: http.MethodPost, path: "/api/orders", token: f.token, body: fiber.Map{
		"customer_id": "no-existe",
		"items":       []fiber.Map{{"product_id": f.productID, "quantity": 1}},
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrders_CantidadFueraDeRango_Retorna400(t *testing.T) {
	f := newOrderFixture(t)
	resp, body := do(t, f.app, call{method: http.MethodPost, path: "/api/orders", token: f.token, body: fiber.Map{
		"customer_id": f.customerID,
		"items": []fiber.Map{
			{"product_id": f.productID, "quantity": math.MaxInt64},
			{"product_id": f.productID, "quantity": 2},
		},
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "VALIDATION")
}

func TestOrders_EstadoYFiltro(t *testing.T) {
	f := newOrderFixture(t)
	a := f.create(t, 1)
	f.create(t, 2)

	resp, body := do(t, f.app, call{method: http.MethodPatch, path: "/api/orders/" + a.ID + "/status", token: f.token,
		body: fiber.Map{"status": "completed"}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "completed", decode[dto.OrderResponse](t, body).Status)

	_, body = do(t, f.app, call{method: http.MethodGet, path: "/api/orders?status=completed", token: f.token})
	completed := decode[dto.OrderListResponse](t, body)
	require.Equal(t, 1, completed.Total)
	assert.Equal(t, a.ID, completed.Items[0].ID)

	_, body = do(t, f.app, call{method: http.MethodGet, path: "/api/orders?status=all&q=empanada", token: f.token})
	assert.Equal(t, 2, decode[dto.OrderListResponse](t, body).Total)

	resp, _ = do(t, f.app, call{method: http.MethodGet, path: "/api/orders?status=cancelled", token: f.token})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, f.app, call{method: http.MethodPatch, path: "/api/orders/" + a.ID + "/status", token: f.token,
		body: fiber.Map{"status": "shipped"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrders_EditarYEliminar(t *testing.T) {
	f := newOrderFixture(t)
	o := f.create(t, 1)

	resp, body := do(t, f.app, call{method: http.MethodPut, path: "/api/orders/" + o.ID, token: f.token, body: fiber.Map{
		"customer_id": f.customerID,
		"items":       []fiber.Map{{"product_id": f.productID, "quantity": 3}},
		"status":      "processing",
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	updated := decode[dto.OrderResponse](t, body)
	assert.Equal(t, "7.5", updated.Total.String())
	assert.Equal(t, "processing", updated.Status)

	resp, _ = do(t, f.app, call{method: http.MethodDelete, path: "/api/orders/" + o.ID, token: f.token})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, f.app, call{method: http.MethodGet, path: "/api/orders/" + o.ID, token: f.token})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrders_ExportXMLConETag(t *testing.T) {
	f := newOrderFixture(t)
	f.create(t, 2)

	resp, body := do(t, f.app, call{method: http.MethodGet, path: "/api/orders/export?format=xml", token: f.token})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	assert.Contains(t, string(body), "Empanada")

	resp, _ = do(t, f.app, call{method: http.MethodGet, path: "/api/orders/export?format=xml", token: f.token,
		headers: map[string]string{"If-None-Match": etag}})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	// Un cambio en los pedidos cambia el ETag.
	f.create(t, 1)
	resp, _ = do(t, f.app, call{method: http.MethodGet, path: "/api/orders/export?format=xml", token: f.token,
		headers: map[string]string{"If-None-Match": etag}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEqual(t, etag, resp.Header.Get("ETag"))
}

func TestOrders_ExportCSV(t *testing.T) {
	f := newOrderFixture(t)
	f.create(t, 2)

	resp, body := do(t, f.app, call{method: http.MethodGet, path: "/api/orders/export", token: f.token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv"))
	assert.Contains(t, string(body), "Empanada")
}

func TestOrders_Comprobante(t *testing.T) {
	f := newOrderFixture(t)
	o := f.create(t, 2)

	resp, body := do(t, f.app, call{method: http.MethodGet, path: "/api/orders/" + o.ID + "/receipt", token: f.token})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))

	resp, _ = do(t, f.app, call{method: http.MethodGet, path: "/api/orders/no-existe/receipt", token: f.token})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestProfile_OnboardingYActualizacion(t *testing.T) {
	app := newTestApp(t)
	token := signUp(t, app, "ana@ejemplo.com")

	resp, body := do(t, app, call{method: http.MethodPost, path: "/api/profile/onboarding", token: token, body: fiber.Map{
		"business_type": "restaurant", "business_name": "La Esquina", "business_categories": []string{"Comida"},
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	u := decode[dto.UserResponse](t, body)
	assert.True(t, u.OnboardingCompleted)
	assert.Equal(t, "La Esquina", u.BusinessName)

	// El onboarding deja sembrados los datos de ejemplo.
	_, body = do(t, app, call{method: http.MethodGet, path: "/api/products", token: token})
	assert.Equal(t, 5, decode[dto.ProductListResponse](t, body).Total)

	resp, body = do(t, app, call{method: http.MethodPut, path: "/api/profile", token: token, body: fiber.Map{
		"business_name": "La Esquina 2", "business_type": "restaurant", "phone": "555-1234",
	}})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "555-1234", decode[dto.UserResponse](t, body).Phone)

	_, body = do(t, app, call{method: http.MethodGet, path: "/api/dashboard/summary", token: token})
	assert.Equal(t, "La Esquina 2", decode[dto.DashboardSummaryDTO](t, body).BusinessName)

	resp, _ = do(t, app, call{method: http.MethodPut, path: "/api/profile", token: token, body: fiber.Map{
		"business_type": "conglomerado",
	}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
