package interfaces

import (
	"context"
	"os_service_api/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

// IOrderRepository abstracts persistence of work orders.
//
// A zero-value Order with nil error means "not found", the same convention the
// other repositories follow.
//
// Update is optimistic: it only succeeds when the stored version equals
// o.Version, and returns the order with the bumped version. A version mismatch
// returns a zero-value Order with nil error.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	ListByCustomerID(ctx context.Context, customerID string, excludeStatus entities.OrderStatus) ([]entities.Order, error)
}
