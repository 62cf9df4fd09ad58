package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every domain error wraps exactly one of them so callers can map
// failures with errors.Is without knowing every specific sentinel.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrConflict           = errors.New("conflict")
	ErrPersistenceFailure = errors.New("persistence failure")
)

var (
	ErrNegativeMoney      = fmt.Errorf("%w: money amount cannot be negative", ErrInvalidArgument)
	ErrMoneyOutOfRange    = fmt.Errorf("%w: money amount exceeds the maximum", ErrInvalidArgument)
	ErrOrderTotalTooLarge = fmt.Errorf("%w: order total exceeds the maximum", ErrInvalidArgument)
	ErrUnknownOrderStatus = fmt.Errorf("%w: unknown order status", ErrInvalidArgument)
	ErrBlankItemID        = fmt.Errorf("%w: line item id is required", ErrInvalidArgument)
	ErrBlankCustomerID    = fmt.Errorf("%w: customer id is required", ErrInvalidArgument)
	ErrBlankVehicleID     = fmt.Errorf("%w: vehicle id is required", ErrInvalidArgument)

	ErrOrderClosedForItems     = fmt.Errorf("%w: items cannot be attached to a closed order", ErrInvalidState)
	ErrOrderNotEditable        = fmt.Errorf("%w: items can only be removed while the order is received or awaiting approval", ErrInvalidState)
	ErrStatusTransitionDenied  = fmt.Errorf("%w: status transition not allowed", ErrInvalidState)
	ErrOrderNotPayable         = fmt.Errorf("%w: only finished or delivered orders can be paid", ErrInvalidState)
	ErrVehicleCustomerMismatch = fmt.Errorf("%w: vehicle does not belong to customer", ErrInvalidArgument)
)

// UnfinishedOrdersError is returned by the creation guard. The count is part of
// the contract so callers can render it.
type UnfinishedOrdersError struct {
	CustomerID string
	Count      int
}

func (e *UnfinishedOrdersError) Error() string {
	return fmt.Sprintf("customer has %d unfinished order(s)", e.Count)
}

func (e *UnfinishedOrdersError) Unwrap() error {
	return ErrConflict
}
