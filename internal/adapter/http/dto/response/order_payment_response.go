package response

import (
	"os_service_api/internal/domain/entities"
	"time"
)

type OrderPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	OrderID     string    `json:"order_id"`
	AmountCents int64     `json:"amount_cents"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		PaymentID:    p.ID,
		OrderID:      p.OrderID,
		AmountCents:  p.Amount.Cents(),
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromOrderPayments(items []entities.OrderPayment) []OrderPaymentResponse {
	return mapSlice(items, FromOrderPayment)
}
