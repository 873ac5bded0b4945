package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizpanel-api/internal/application/dto"
	"github.com/jhoicas/bizpanel-api/internal/application/usecase"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido).
type OrderHandler struct {
	uc      *usecase.OrderUseCase
	export  *usecase.ExportUseCase
	receipt *usecase.ReceiptUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, export *usecase.ExportUseCase, receipt *usecase.ReceiptUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, export: export, receipt: receipt}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Las líneas del mismo producto se fusionan; el total se calcula en el servidor.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "Cliente, líneas y estado opcional"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Búsqueda por cliente o producto"
// @Param        status  query  string  false  "all, new, processing o completed"
// @Success      200     {object}  dto.OrderListResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c), dto.OrderFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar pedido
// @Description  Las líneas existentes conservan nombre y precio; las nuevas copian el catálogo actual.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.OrderRequest  true  "Cliente, líneas y estado opcional"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido")
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetUserID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido
// @Tags         orders
// @Security     Bearer
// @Param        id   path  string  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receipt godoc
// @Summary      Comprobante del pedido en PDF
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	doc, err := h.receipt.Render(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	if doc == nil {
		return notFound(c, "pedido")
	}
	c.Attachment("pedido-" + id + ".pdf")
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(doc)
}

// Export godoc
// @Summary      Exportar pedidos
// @Description  csv: una fila por línea de pedido. xml: documento canónico con ETag (SHA-256).
// @Tags         orders
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/xml
// @Param        format  query  string  false  "csv o xml"  default(csv)
// @Success      200
// @Success      304
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/export [get]
func (h *OrderHandler) Export(c *fiber.Ctx) error {
	file, err := h.export.Orders(c.UserContext(), GetUserID(c), c.Query("format"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}
