package entities

import "time"

// PresentationDateLayout is the fixed format for every timestamp shown to customers.
const PresentationDateLayout = "02/01/2006 15:04:05"

type CustomerSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

type VehicleSummary struct {
	ID    string `json:"id"`
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// LineItemPresentation carries the amount as a two-decimal string, "150.00".
type LineItemPresentation struct {
	ID     string `json:"id" example:"svc-1"`
	Name   string `json:"name" example:"Alinhamento"`
	Amount string `json:"amount" example:"150.00"`
}

// OrderPresentation is the customer-facing view of an order.
type OrderPresentation struct {
	ID             string                 `json:"id"`
	Customer       CustomerSummary        `json:"customer"`
	Vehicle        VehicleSummary         `json:"vehicle"`
	Description    string                 `json:"description"`
	Status         OrderStatus            `json:"status"`
	Services       []LineItemPresentation `json:"services"`
	Materials      []LineItemPresentation `json:"materials"`
	OpenedAt       string                 `json:"opened_at"`
	ClosedAt       string                 `json:"closed_at,omitempty"`
	UpdatedAt      string                 `json:"updated_at"`
	MaterialsTotal string                 `json:"materials_total" example:"60.00"`
	ServicesTotal  string                 `json:"services_total" example:"90.00"`
	GrandTotal     string                 `json:"grand_total" example:"150.00"`

	// Statuses the order can move to under the active policy.
	AllowedTransitions []OrderStatus `json:"allowed_transitions"`
}

// ToPresentation renders the order with its customer and vehicle. It is the only
// place where cents are converted to decimals.
func (o Order) ToPresentation(policy OrderPolicy, c Customer, v Vehicle) OrderPresentation {
	totals := o.ComputeTotals()
	p := OrderPresentation{
		ID: o.ID,
		Customer: CustomerSummary{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			Document: c.Document,
		},
		Vehicle: VehicleSummary{
			ID:    v.ID,
			Plate: v.Plate,
			Brand: v.Brand,
			Model: v.Model,
			Year:  v.Year,
		},
		Description:    o.Description,
		Status:         o.Status,
		Services:       presentItems(o.Services),
		Materials:      presentItems(o.Materials),
		OpenedAt:       formatPresentationDate(o.OpenedAt),
		UpdatedAt:      formatPresentationDate(o.UpdatedAt),
		MaterialsTotal: totals.Materials.String(),
		ServicesTotal:  totals.Services.String(),
		GrandTotal:     totals.Grand.String(),

		AllowedTransitions: policy.AllowedTransitions(o.Status),
	}
	if o.ClosedAt != nil {
		p.ClosedAt = formatPresentationDate(*o.ClosedAt)
	}
	return p
}

func presentItems(items []LineItemSnapshot) []LineItemPresentation {
	out := make([]LineItemPresentation, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemPresentation{ID: it.itemID, Name: it.name, Amount: it.amount.String()})
	}
	return out
}

func formatPresentationDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(PresentationDateLayout)
}
