package usecase

import (
	"fmt"
	"os_service_api/internal/domain/entities"
	"strings"
	"time"
)

var (
	ErrInvalidOrderID    = fmt.Errorf("%w: invalid order id", entities.ErrInvalidArgument)
	ErrInvalidCustomerID = fmt.Errorf("%w: invalid customer id", entities.ErrInvalidArgument)
	ErrInvalidVehicleID  = fmt.Errorf("%w: invalid vehicle id", entities.ErrInvalidArgument)
	ErrInvalidServiceID  = fmt.Errorf("%w: invalid service id", entities.ErrInvalidArgument)
	ErrInvalidMaterialID = fmt.Errorf("%w: invalid material id", entities.ErrInvalidArgument)

	ErrOrderNotFound    = fmt.Errorf("%w: order not found", entities.ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("%w: customer not found", entities.ErrNotFound)
	ErrVehicleNotFound  = fmt.Errorf("%w: vehicle not found", entities.ErrNotFound)
	ErrServiceNotFound  = fmt.Errorf("%w: service not found", entities.ErrNotFound)
	ErrMaterialNotFound = fmt.Errorf("%w: material not found", entities.ErrNotFound)

	ErrOrderConcurrentlyModified = fmt.Errorf("%w: order was modified by another request", entities.ErrConflict)
	ErrMissingEntityID           = fmt.Errorf("%w: repository returned an entity without id", entities.ErrPersistenceFailure)
)

// persistenceErr wraps an unexpected repository error. Nothing produced by the
// failed call is considered committed.
func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", entities.ErrPersistenceFailure, op, err)
}

func requireID(id string, invalid error) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", invalid
	}
	return id, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
