package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPaymentNotFound = pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)

// OrderPaymentHandler handles HTTP requests for order payments.
type OrderPaymentHandler struct {
	usecase  usecase.IOrderPaymentUseCase
	mockMode bool
	log      *zap.Logger
}

// NewOrderPaymentHandler builds the handler. In mock mode an unreadable body
// falls back to an empty payload instead of failing.
func NewOrderPaymentHandler(uc usecase.IOrderPaymentUseCase, mockMode bool, log *zap.Logger) *OrderPaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderPaymentHandler{usecase: uc, mockMode: mockMode, log: log}
}

// PayOrder godoc
// @Summary      Charge an order
// @Description  Charges the grand total of a FINALIZADA or ENTREGUE order through Mercado Pago. The body is either the provider payload or {"mp_payload": {...}}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true   "Order ID"
// @Param        payload  body      request.OrderPaymentRequest  false  "Mercado Pago payload"
// @Success      200      {object}  response.OrderPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [post]
func (h *OrderPaymentHandler) PayOrder(c *gin.Context) {
	orderID := c.Param("id")
	log := h.log.With(zap.String("order_id", orderID))
	log.Info("[payment][handler] pay start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("[payment][handler] invalid payload", zap.Error(err))
			abortInvalidRequest(c, err)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.PayOrder(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		log.Warn("[payment][handler] pay failed", zap.Error(err))
		abortWithError(c, err)
		return
	}
	log.Info("[payment][handler] pay success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromOrderPayment(created))
}

// ListPayments godoc
// @Summary      List the payments of an order
// @Description  Newest first.
// @Tags         payments
// @Produce      json
// @Param        id   path     string  true  "Order ID"
// @Success      200  {array}  response.OrderPaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [get]
func (h *OrderPaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	c.JSON(http.StatusOK, response.FromOrderPayments(payments))
}

// GetLatestPayment godoc
// @Summary      Get the latest payment of an order
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.OrderPaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/payments/latest [get]
func (h *OrderPaymentHandler) GetLatestPayment(c *gin.Context) {
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if len(payments) == 0 {
		c.AbortWithStatusJSON(errPaymentNotFound.HTTPStatus, errPaymentNotFound.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromOrderPayment(latest))
}

// readMPPayload accepts either the raw provider payload or an envelope with
// an mp_payload field. An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if w := strings.TrimSpace(string(wrapped)); w == "" || w == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
