package handlers

import (
	"context"
	"errors"
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// OrderHandler handles HTTP requests for work orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Open a work order
// @Description  Opens an order in RECEBIDA. Fails when the customer still has orders that are not FINALIZADA.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, payload.VehicleID, payload.Description)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(o))
}

// GetOrder godoc
// @Summary      Get a work order
// @Description  Customer-facing view with decimal amounts and formatted dates.
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  entities.OrderPresentation
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	p, err := h.usecase.GetPresentation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListCustomerOrders godoc
// @Summary      List the orders of a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "Customer ID"
// @Success      200  {array}   response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{id}/orders [get]
func (h *OrderHandler) ListCustomerOrders(c *gin.Context) {
	orders, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// UpdateStatus godoc
// @Summary      Change the order status
// @Description  Entering FINALIZADA stamps closed_at once.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path      string                             true  "Order ID"
// @Param        status  body      request.UpdateOrderStatusRequest  true  "Status"
// @Success      200     {object}  response.OrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			abortWithError(c, entities.ErrUnknownOrderStatus)
			return
		}
		abortInvalidRequest(c, err)
		return
	}

	o, err := h.usecase.TransitionStatus(c.Request.Context(), c.Param("id"), payload.NormalizedStatus())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateDescription godoc
// @Summary      Edit the order description
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id           path      string                                  true  "Order ID"
// @Param        description  body      request.UpdateOrderDescriptionRequest  true  "Description"
// @Success      200          {object}  response.OrderResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /orders/{id}/description [patch]
func (h *OrderHandler) UpdateDescription(c *gin.Context) {
	var payload request.UpdateOrderDescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}

	o, err := h.usecase.UpdateDescription(c.Request.Context(), c.Param("id"), payload.Description)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// AttachService godoc
// @Summary      Add a service to the order
// @Description  Snapshots the current service name and price.
// @Tags         orders
// @Produce      json
// @Param        id          path      string  true  "Order ID"
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.OrderResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /orders/{id}/services/{service_id} [post]
func (h *OrderHandler) AttachService(c *gin.Context) {
	h.attach(c, c.Param("service_id"), h.usecase.AttachService)
}

// DetachService godoc
// @Summary      Remove a service from the order
// @Description  Removes the first matching line. A service that is not on the order is reported with outcome not_present.
// @Tags         orders
// @Produce      json
// @Param        id          path      string  true  "Order ID"
// @Param        service_id  path      string  true  "Service ID"
// @Success      200         {object}  response.DetachResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /orders/{id}/services/{service_id} [delete]
func (h *OrderHandler) DetachService(c *gin.Context) {
	h.detach(c, c.Param("service_id"), h.usecase.DetachService)
}

// AttachMaterial godoc
// @Summary      Add a material to the order
// @Description  Snapshots the current material name and internal-use price.
// @Tags         orders
// @Produce      json
// @Param        id           path      string  true  "Order ID"
// @Param        material_id  path      string  true  "Material ID"
// @Success      200          {object}  response.OrderResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /orders/{id}/materials/{material_id} [post]
func (h *OrderHandler) AttachMaterial(c *gin.Context) {
	h.attach(c, c.Param("material_id"), h.usecase.AttachMaterial)
}

// DetachMaterial godoc
// @Summary      Remove a material from the order
// @Tags         orders
// @Produce      json
// @Param        id           path      string  true  "Order ID"
// @Param        material_id  path      string  true  "Material ID"
// @Success      200          {object}  response.DetachResponse
// @Failure      400          {object}  pkg.HTTPError
// @Failure      404          {object}  pkg.HTTPError
// @Router       /orders/{id}/materials/{material_id} [delete]
func (h *OrderHandler) DetachMaterial(c *gin.Context) {
	h.detach(c, c.Param("material_id"), h.usecase.DetachMaterial)
}

func (h *OrderHandler) attach(
	c *gin.Context,
	itemID string,
	attach func(ctx context.Context, orderID, itemID string) (entities.Order, error),
) {
	o, err := attach(c.Request.Context(), c.Param("id"), itemID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) detach(
	c *gin.Context,
	itemID string,
	detach func(ctx context.Context, orderID, itemID string) (entities.Order, entities.DetachResult, error),
) {
	o, res, err := detach(c.Request.Context(), c.Param("id"), itemID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDetach(o, res))
}
