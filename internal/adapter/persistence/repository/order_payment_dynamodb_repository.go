package repository

import (
	"context"
	"fmt"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
)

const (
	defaultOrderPaymentsTableName = "order_payments"
	orderPaymentsOrderIDIndex     = "order_id-index"
)

type orderPaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	OrderID      string                 `dynamodbav:"order_id"`
	AmountCents  int64                  `dynamodbav:"amount_cents"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// OrderPaymentDynamoRepository persists OrderPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type OrderPaymentDynamoRepository struct {
	payments table[orderPaymentItem]
}

var _ interfaces.IOrderPaymentRepository = (*OrderPaymentDynamoRepository)(nil)

func NewOrderPaymentDynamoRepository(ddb DynamoAPI, tableName string) *OrderPaymentDynamoRepository {
	return &OrderPaymentDynamoRepository{payments: newTable[orderPaymentItem](ddb, tableName, defaultOrderPaymentsTableName)}
}

// Create stores p under the provider payment id.
func (r *OrderPaymentDynamoRepository) Create(ctx context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
	ok, err := r.payments.create(ctx, toOrderPaymentItem(p))
	if err != nil {
		return entities.OrderPayment{}, err
	}
	if !ok {
		return entities.OrderPayment{}, fmt.Errorf("payment %s already exists", p.ID)
	}
	return p, nil
}

func (r *OrderPaymentDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	raw, err := r.payments.queryIndex(ctx, orderPaymentsOrderIDIndex, "order_id", orderID, "", nil, nil)
	if err != nil {
		return nil, err
	}
	items := make([]entities.OrderPayment, 0, len(raw))
	for _, it := range raw {
		p, err := fromOrderPaymentItem(it)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

func toOrderPaymentItem(p entities.OrderPayment) orderPaymentItem {
	return orderPaymentItem{
		ID:           p.ID,
		OrderID:      p.OrderID,
		AmountCents:  p.Amount.Cents(),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromOrderPaymentItem(it orderPaymentItem) (entities.OrderPayment, error) {
	amount, err := entities.NewMoney(it.AmountCents)
	if err != nil {
		return entities.OrderPayment{}, err
	}
	var times timeFields
	p := entities.OrderPayment{
		ID:           it.ID,
		OrderID:      it.OrderID,
		Amount:       amount,
		Date:         times.parse("date", it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}
	if times.err != nil {
		return entities.OrderPayment{}, fmt.Errorf("payment %s: %w", it.ID, times.err)
	}
	return p, nil
}
