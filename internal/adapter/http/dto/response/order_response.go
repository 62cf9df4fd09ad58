package response

import (
	"time"

	"os_service_api/internal/domain/entities"
)

type LineItemResponse struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

type OrderTotalsResponse struct {
	MaterialsCents int64 `json:"materials_cents"`
	ServicesCents  int64 `json:"services_cents"`
	GrandCents     int64 `json:"grand_cents"`
}

// OrderResponse is the internal view of an order. Amounts stay in cents; the
// customer-facing decimal view is entities.OrderPresentation.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	VehicleID   string              `json:"vehicle_id"`
	Status      string              `json:"status"`
	Description string              `json:"description"`
	OpenedAt    time.Time           `json:"opened_at"`
	ClosedAt    *time.Time          `json:"closed_at,omitempty"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Services    []LineItemResponse  `json:"services"`
	Materials   []LineItemResponse  `json:"materials"`
	Totals      OrderTotalsResponse `json:"totals"`
	Version     int64               `json:"version"`
}

type DetachResponse struct {
	Removed int           `json:"removed"`
	Outcome string        `json:"outcome" example:"removed"`
	Order   OrderResponse `json:"order"`
}

func FromOrder(o entities.Order) OrderResponse {
	totals := o.ComputeTotals()
	return OrderResponse{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		VehicleID:   o.VehicleID,
		Status:      o.Status.String(),
		Description: o.Description,
		OpenedAt:    o.OpenedAt,
		ClosedAt:    o.ClosedAt,
		UpdatedAt:   o.UpdatedAt,
		Services:    fromLineItems(o.Services),
		Materials:   fromLineItems(o.Materials),
		Totals: OrderTotalsResponse{
			MaterialsCents: totals.Materials.Cents(),
			ServicesCents:  totals.Services.Cents(),
			GrandCents:     totals.Grand.Cents(),
		},
		Version: o.Version,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromDetach(o entities.Order, r entities.DetachResult) DetachResponse {
	return DetachResponse{Removed: r.Removed, Outcome: string(r.Outcome), Order: FromOrder(o)}
}

func fromLineItems(items []entities.LineItemSnapshot) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{ItemID: it.ItemID(), Name: it.Name(), AmountCents: it.Amount().Cents()})
	}
	return out
}
