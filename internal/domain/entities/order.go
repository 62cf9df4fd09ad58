package entities

import (
	"fmt"
	"strings"
	"time"
)

// Order is the work order (ordem de serviço) aggregate.
//
// Mutations are value-returning: the receiver is never changed, so a failed
// operation or a failed save leaves the caller's copy as it was.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (customer_id-index): customer_id
//   - version: optimistic lock, bumped on every update
type Order struct {
	ID          string             `json:"id"`
	CustomerID  string             `json:"customer_id"`
	VehicleID   string             `json:"vehicle_id"`
	Status      OrderStatus        `json:"status"`
	Description string             `json:"description,omitempty"`
	OpenedAt    time.Time          `json:"opened_at"`
	ClosedAt    *time.Time         `json:"closed_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Services    []LineItemSnapshot `json:"-"`
	Materials   []LineItemSnapshot `json:"-"`
	Version     int64              `json:"version"`
}

// OrderTotals are always derived from the line items, never stored.
type OrderTotals struct {
	Materials Money
	Services  Money
	Grand     Money
}

// DetachOutcome tells a real removal apart from a no-op.
type DetachOutcome string

const (
	DetachRemoved    DetachOutcome = "removed"
	DetachNotPresent DetachOutcome = "not_present"
)

type DetachResult struct {
	Removed int
	Outcome DetachOutcome
}

// NewOrder opens an order. The id is assigned by the repository on first save.
func NewOrder(customerID, vehicleID, description string, now time.Time) (Order, error) {
	customerID = strings.TrimSpace(customerID)
	vehicleID = strings.TrimSpace(vehicleID)
	if customerID == "" {
		return Order{}, ErrBlankCustomerID
	}
	if vehicleID == "" {
		return Order{}, ErrBlankVehicleID
	}
	return Order{
		CustomerID:  customerID,
		VehicleID:   vehicleID,
		Status:      OrderStatusRecebida,
		Description: strings.TrimSpace(description),
		OpenedAt:    now,
		UpdatedAt:   now,
		Services:    []LineItemSnapshot{},
		Materials:   []LineItemSnapshot{},
	}, nil
}

func (o Order) AttachService(policy OrderPolicy, item LineItemSnapshot, now time.Time) (Order, error) {
	if _, err := policy.Decide(o.Status, ActionAttachService, ""); err != nil {
		return o, err
	}
	out := o.clone()
	out.Services = append(out.Services, item)
	out.UpdatedAt = now
	if err := out.CheckTotals(); err != nil {
		return o, err
	}
	return out, nil
}

func (o Order) AttachMaterial(policy OrderPolicy, item LineItemSnapshot, now time.Time) (Order, error) {
	if _, err := policy.Decide(o.Status, ActionAttachMaterial, ""); err != nil {
		return o, err
	}
	out := o.clone()
	out.Materials = append(out.Materials, item)
	out.UpdatedAt = now
	if err := out.CheckTotals(); err != nil {
		return o, err
	}
	return out, nil
}

func (o Order) DetachService(policy OrderPolicy, itemID string, now time.Time) (Order, DetachResult, error) {
	if _, err := policy.Decide(o.Status, ActionDetachService, ""); err != nil {
		return o, DetachResult{}, err
	}
	items, res := removeFirst(o.Services, itemID)
	if res.Outcome == DetachNotPresent {
		return o, res, nil
	}
	out := o.clone()
	out.Services = items
	out.UpdatedAt = now
	return out, res, nil
}

func (o Order) DetachMaterial(policy OrderPolicy, itemID string, now time.Time) (Order, DetachResult, error) {
	if _, err := policy.Decide(o.Status, ActionDetachMaterial, ""); err != nil {
		return o, DetachResult{}, err
	}
	items, res := removeFirst(o.Materials, itemID)
	if res.Outcome == DetachNotPresent {
		return o, res, nil
	}
	out := o.clone()
	out.Materials = items
	out.UpdatedAt = now
	return out, res, nil
}

// TransitionStatus moves the order to requested. Entering FINALIZADA stamps
// ClosedAt once; it is never cleared afterwards.
func (o Order) TransitionStatus(policy OrderPolicy, requested OrderStatus, now time.Time) (Order, error) {
	next, err := policy.Decide(o.Status, ActionTransition, requested)
	if err != nil {
		return o, err
	}
	out := o.clone()
	out.Status = next
	out.UpdatedAt = now
	if next.IsCompletion() && out.ClosedAt == nil {
		closedAt := now
		out.ClosedAt = &closedAt
	}
	return out, nil
}

func (o Order) UpdateDescription(description string, now time.Time) Order {
	out := o.clone()
	out.Description = strings.TrimSpace(description)
	out.UpdatedAt = now
	return out
}

// Totals derives the three totals and fails when any of them leaves the Money
// range.
func (o Order) Totals() (OrderTotals, error) {
	materials, err := sumSnapshots(o.Materials)
	if err != nil {
		return OrderTotals{}, fmt.Errorf("%w: materials: %v", ErrOrderTotalTooLarge, err)
	}
	services, err := sumSnapshots(o.Services)
	if err != nil {
		return OrderTotals{}, fmt.Errorf("%w: services: %v", ErrOrderTotalTooLarge, err)
	}
	grand, err := materials.Add(services)
	if err != nil {
		return OrderTotals{}, fmt.Errorf("%w: %v", ErrOrderTotalTooLarge, err)
	}
	return OrderTotals{Materials: materials, Services: services, Grand: grand}, nil
}

// CheckTotals reports whether the order's totals fit in Money. Attach and the
// order repository enforce it.
func (o Order) CheckTotals() error {
	_, err := o.Totals()
	return err
}

// ComputeTotals is Totals for orders that passed CheckTotals. An order whose
// totals do not fit reports every total at MaxMoneyCents, never a wrapped value.
func (o Order) ComputeTotals() OrderTotals {
	t, err := o.Totals()
	if err != nil {
		return OrderTotals{Materials: maxMoney, Services: maxMoney, Grand: maxMoney}
	}
	return t
}

func (o Order) IsClosed() bool {
	return o.Status.IsClosed()
}

func (o Order) clone() Order {
	out := o
	out.Services = append([]LineItemSnapshot(nil), o.Services...)
	out.Materials = append([]LineItemSnapshot(nil), o.Materials...)
	if o.ClosedAt != nil {
		closedAt := *o.ClosedAt
		out.ClosedAt = &closedAt
	}
	return out
}

func removeFirst(items []LineItemSnapshot, itemID string) ([]LineItemSnapshot, DetachResult) {
	itemID = strings.TrimSpace(itemID)
	for i, it := range items {
		if it.itemID == itemID {
			out := make([]LineItemSnapshot, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			return out, DetachResult{Removed: 1, Outcome: DetachRemoved}
		}
	}
	return items, DetachResult{Removed: 0, Outcome: DetachNotPresent}
}
