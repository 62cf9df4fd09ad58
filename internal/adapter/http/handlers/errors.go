package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase"
	"os_service_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

type errorMapping struct {
	target error
	code   string
	msg    string
	status int
}

// Checked in order; specific sentinels come before the kind they wrap.
var errorMappings = []errorMapping{
	{usecase.ErrOrderNotFound, "ORDER_NOT_FOUND", "Order not found", http.StatusNotFound},
	{usecase.ErrCustomerNotFound, "CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound},
	{usecase.ErrVehicleNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound},
	{usecase.ErrServiceNotFound, "SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound},
	{usecase.ErrMaterialNotFound, "MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound},
	{usecase.ErrOrderConcurrentlyModified, "ORDER_CONCURRENTLY_MODIFIED", "Order was modified by another request, reload and retry", http.StatusConflict},

	{entities.ErrOrderClosedForItems, "ORDER_CLOSED", "Items cannot be attached to a closed order", http.StatusBadRequest},
	{entities.ErrOrderNotEditable, "ORDER_NOT_EDITABLE", "Items can only be removed while the order is received or awaiting approval", http.StatusBadRequest},
	{entities.ErrStatusTransitionDenied, "STATUS_TRANSITION_DENIED", "Status transition not allowed", http.StatusBadRequest},
	{entities.ErrOrderNotPayable, "ORDER_NOT_PAYABLE", "Only finished or delivered orders can be paid", http.StatusBadRequest},
	{usecase.ErrOrderHasNothingToCharge, "ORDER_HAS_NOTHING_TO_CHARGE", "Order total is zero", http.StatusBadRequest},
	{entities.ErrVehicleCustomerMismatch, "VEHICLE_CUSTOMER_MISMATCH", "Vehicle does not belong to customer", http.StatusBadRequest},
	{entities.ErrUnknownOrderStatus, "INVALID_STATUS", "Unknown order status", http.StatusBadRequest},

	{usecase.ErrPaymentGatewayCustomerNotFound, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayInvalidUsers, "PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized},
	{usecase.ErrPaymentGatewayNotConfigured, "PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable},
}

// mapError turns a use case error into the AppError rendered to the client.
func mapError(err error) *pkg.AppError {
	var unfinished *entities.UnfinishedOrdersError
	if errors.As(err, &unfinished) {
		return pkg.NewDomainError("CUSTOMER_HAS_UNFINISHED_ORDERS",
			fmt.Sprintf("Customer has %d unfinished order(s)", unfinished.Count), err, http.StatusBadRequest)
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return pkg.NewDomainError(m.code, m.msg, err, m.status)
		}
	}
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		return pkg.NewDomainError("INVALID_ARGUMENT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortInvalidRequest(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}
