package request

import "strings"

type CreateOrderRequest struct {
	CustomerID  string `json:"customer_id" binding:"required" example:"3f1c2b9a-6a54-4f0e-9a61-8c5a2f0e7d11"`
	VehicleID   string `json:"vehicle_id" binding:"required" example:"b7d9e0c4-1f2a-4c3b-8d5e-6f7a8b9c0d1e"`
	Description string `json:"description" binding:"max=1000" example:"Barulho na suspensão dianteira"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,order_status" example:"EM_DIAGNOSTICO"`
}

// NormalizedStatus returns the status as stored, upper case and trimmed.
func (r UpdateOrderStatusRequest) NormalizedStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}

type UpdateOrderDescriptionRequest struct {
	Description string `json:"description" binding:"max=1000" example:"Cliente autorizou troca das pastilhas"`
}
