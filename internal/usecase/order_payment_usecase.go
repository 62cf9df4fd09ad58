package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=order_payment_usecase.go -destination=../adapter/http/handlers/mocks/order_payment_usecase_mock.go -package=mocks

var (
	ErrInvalidMPPayload               = fmt.Errorf("%w: invalid mercado pago payload", entities.ErrInvalidArgument)
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = fmt.Errorf("%w: payment gateway bad request", entities.ErrInvalidArgument)
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = fmt.Errorf("%w: payment gateway invalid users involved", entities.ErrInvalidArgument)
	ErrPaymentGatewayCustomerNotFound = fmt.Errorf("%w: payment gateway customer not found", entities.ErrInvalidArgument)
	ErrOrderHasNothingToCharge        = fmt.Errorf("%w: order total is zero", entities.ErrInvalidState)
)

// IOrderPaymentUseCase charges finished orders through the payment gateway.
//
// The amount is always the order's grand total at payment time; a value sent by
// the caller in the payload is overwritten.

type IOrderPaymentUseCase interface {
	PayOrder(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type OrderPaymentUseCase struct {
	repo    interfaces.IOrderPaymentRepository
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	log     *zap.Logger
	now     func() time.Time
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(repo interfaces.IOrderPaymentRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, log *zap.Logger) *OrderPaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderPaymentUseCase{repo: repo, orders: orders, gateway: gateway, log: log, now: utcNow}
}

func (u *OrderPaymentUseCase) PayOrder(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.OrderPayment, error) {
	orderID, err := requireID(orderID, ErrInvalidOrderID)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	log := u.log.With(zap.String("order_id", orderID))
	log.Info("[payment][usecase] pay-order start", zap.Int("payload_len", len(mpPayload)))

	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Info("[payment][usecase] invalid payload (not-json-object)")
		return entities.OrderPayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.OrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.OrderPayment{}, persistenceErr("load order", err)
	}
	if o.ID == "" {
		return entities.OrderPayment{}, ErrOrderNotFound
	}
	if !o.IsPayable() {
		log.Info("[payment][usecase] order not payable", zap.String("status", string(o.Status)))
		return entities.OrderPayment{}, entities.ErrOrderNotPayable
	}
	totals, err := o.Totals()
	if err != nil {
		return entities.OrderPayment{}, err
	}
	total := totals.Grand
	if total.IsZero() {
		return entities.OrderPayment{}, ErrOrderHasNothingToCharge
	}

	// Mercado Pago uses external_reference to reconcile events with the order.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = orderID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Ordem de serviço %s", orderID)
	}
	ensurePayerDefaults(reqMap)
	amount, _ := total.Decimal().Float64()
	reqMap["transaction_amount"] = amount

	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.OrderPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.OrderPayment{}, classifyGatewayError(err)
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	p := entities.OrderPayment{
		ID:           providerPaymentID,
		OrderID:      orderID,
		Amount:       total,
		Date:         u.now(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", p.ID), zap.Error(err))
		return entities.OrderPayment{}, persistenceErr("create payment", err)
	}
	log.Info("[payment][usecase] pay-order success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *OrderPaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID, err := requireID(orderID, ErrInvalidOrderID)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, persistenceErr("list payments", err)
	}
	return items, nil
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
