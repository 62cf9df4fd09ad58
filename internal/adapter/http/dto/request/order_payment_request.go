package request

import "encoding/json"

// OrderPaymentRequest is the payload for the order payment route.
//
// `mp_payload` is forwarded to Mercado Pago after enrichment; its schema is
// owned by the provider.
type OrderPaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
