package usecase

import (
	"context"
	"errors"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

// IOrderUseCase exposes the work order lifecycle.
//
// Every mutation loads a fresh order, applies the aggregate operation under the
// lifecycle policy and persists the result with an optimistic Update. The
// caller only sees the new state once it has been saved.

type IOrderUseCase interface {
	Create(ctx context.Context, customerID, vehicleID, description string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetPresentation(ctx context.Context, id string) (entities.OrderPresentation, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	AttachService(ctx context.Context, orderID, serviceID string) (entities.Order, error)
	DetachService(ctx context.Context, orderID, serviceID string) (entities.Order, entities.DetachResult, error)
	AttachMaterial(ctx context.Context, orderID, materialID string) (entities.Order, error)
	DetachMaterial(ctx context.Context, orderID, materialID string) (entities.Order, entities.DetachResult, error)
	TransitionStatus(ctx context.Context, orderID, status string) (entities.Order, error)
	UpdateDescription(ctx context.Context, orderID, description string) (entities.Order, error)
}

// OrderRepositories groups the collaborators the order use case reads from.
type OrderRepositories struct {
	Orders    interfaces.IOrderRepository
	Customers interfaces.ICustomerRepository
	Vehicles  interfaces.IVehicleRepository
	Services  interfaces.IServiceRepository
	Materials interfaces.IMaterialRepository
}

type OrderUseCase struct {
	repos  OrderRepositories
	policy entities.OrderPolicy
	log    *zap.Logger
	now    func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repos OrderRepositories, policy entities.OrderPolicy, log *zap.Logger) *OrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderUseCase{repos: repos, policy: policy, log: log, now: utcNow}
}

func (u *OrderUseCase) Create(ctx context.Context, customerID, vehicleID, description string) (entities.Order, error) {
	customerID, err := requireID(customerID, entities.ErrBlankCustomerID)
	if err != nil {
		return entities.Order{}, err
	}
	vehicleID, err = requireID(vehicleID, entities.ErrBlankVehicleID)
	if err != nil {
		return entities.Order{}, err
	}
	log := u.log.With(zap.String("customer_id", customerID), zap.String("vehicle_id", vehicleID))

	if _, err := u.loadCustomer(ctx, customerID); err != nil {
		return entities.Order{}, err
	}
	vehicle, err := u.loadVehicle(ctx, vehicleID)
	if err != nil {
		return entities.Order{}, err
	}
	if !vehicle.BelongsTo(customerID) {
		log.Info("[order][usecase] vehicle owner mismatch", zap.String("owner_id", vehicle.CustomerID))
		return entities.Order{}, entities.ErrVehicleCustomerMismatch
	}

	existing, err := u.repos.Orders.ListByCustomerID(ctx, customerID, entities.OrderStatusFinalizada)
	if err != nil {
		return entities.Order{}, persistenceErr("list customer orders", err)
	}
	if err := entities.CheckCreationGuard(customerID, existing); err != nil {
		log.Info("[order][usecase] creation blocked", zap.Error(err))
		return entities.Order{}, err
	}

	o, err := entities.NewOrder(customerID, vehicleID, description, u.now())
	if err != nil {
		return entities.Order{}, err
	}
	created, err := u.repos.Orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, persistenceErr("create order", err)
	}
	if created.ID == "" {
		return entities.Order{}, ErrMissingEntityID
	}
	log.Info("[order][usecase] order created", zap.String("order_id", created.ID))
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id, err := requireID(id, ErrInvalidOrderID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.loadOrder(ctx, id)
}

func (u *OrderUseCase) GetPresentation(ctx context.Context, id string) (entities.OrderPresentation, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.OrderPresentation{}, err
	}
	c, err := u.loadCustomer(ctx, o.CustomerID)
	if err != nil {
		return entities.OrderPresentation{}, err
	}
	v, err := u.loadVehicle(ctx, o.VehicleID)
	if err != nil {
		return entities.OrderPresentation{}, err
	}
	return o.ToPresentation(u.policy, c, v), nil
}

func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	customerID, err := requireID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return nil, err
	}
	if _, err := u.loadCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	orders, err := u.repos.Orders.ListByCustomerID(ctx, customerID, "")
	if err != nil {
		return nil, persistenceErr("list customer orders", err)
	}
	return orders, nil
}

func (u *OrderUseCase) AttachService(ctx context.Context, orderID, serviceID string) (entities.Order, error) {
	serviceID, err := requireID(serviceID, ErrInvalidServiceID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.mutate(ctx, orderID, "attach-service", func(o entities.Order, now time.Time) (entities.Order, bool, error) {
		if err := u.policy.CanAttach(o.Status); err != nil {
			return o, false, err
		}
		svc, err := u.repos.Services.GetByID(ctx, serviceID)
		if err != nil {
			return o, false, persistenceErr("load service", err)
		}
		if svc.ID == "" {
			return o, false, ErrServiceNotFound
		}
		snap, err := entities.SnapshotService(svc)
		if err != nil {
			return o, false, err
		}
		next, err := o.AttachService(u.policy, snap, now)
		return next, err == nil, err
	})
}

func (u *OrderUseCase) AttachMaterial(ctx context.Context, orderID, materialID string) (entities.Order, error) {
	materialID, err := requireID(materialID, ErrInvalidMaterialID)
	if err != nil {
		return entities.Order{}, err
	}
	return u.mutate(ctx, orderID, "attach-material", func(o entities.Order, now time.Time) (entities.Order, bool, error) {
		if err := u.policy.CanAttach(o.Status); err != nil {
			return o, false, err
		}
		mat, err := u.repos.Materials.GetByID(ctx, materialID)
		if err != nil {
			return o, false, persistenceErr("load material", err)
		}
		if mat.ID == "" {
			return o, false, ErrMaterialNotFound
		}
		snap, err := entities.SnapshotMaterial(mat)
		if err != nil {
			return o, false, err
		}
		next, err := o.AttachMaterial(u.policy, snap, now)
		return next, err == nil, err
	})
}

func (u *OrderUseCase) DetachService(ctx context.Context, orderID, serviceID string) (entities.Order, entities.DetachResult, error) {
	serviceID, err := requireID(serviceID, ErrInvalidServiceID)
	if err != nil {
		return entities.Order{}, entities.DetachResult{}, err
	}
	var res entities.DetachResult
	o, err := u.mutate(ctx, orderID, "detach-service", func(o entities.Order, now time.Time) (entities.Order, bool, error) {
		next, r, err := o.DetachService(u.policy, serviceID, now)
		res = r
		return next, err == nil && r.Outcome == entities.DetachRemoved, err
	})
	if err != nil {
		return entities.Order{}, entities.DetachResult{}, err
	}
	return o, res, nil
}

func (u *OrderUseCase) DetachMaterial(ctx context.Context, orderID, materialID string) (entities.Order, entities.DetachResult, error) {
	materialID, err := requireID(materialID, ErrInvalidMaterialID)
	if err != nil {
		return entities.Order{}, entities.DetachResult{}, err
	}
	var res entities.DetachResult
	o, err := u.mutate(ctx, orderID, "detach-material", func(o entities.Order, now time.Time) (entities.Order, bool, error) {
		next, r, err := o.DetachMaterial(u.policy, materialID, now)
		res = r
		return next, err == nil && r.Outcome == entities.DetachRemoved, err
	})
	if err != nil {
		return entities.Order{}, entities.DetachResult{}, err
	}
	return o, res, nil
}

func (u *OrderUseCase) TransitionStatus(ctx context.Context, orderID, status string) (entities.Order, error) {
	requested, err := entities.ParseOrderStatus(status)
	if err != nil {
		return entities.Order{}, err
	}
	return u.mutate(ctx, orderID, "transition", func(o entities.Order, now time.Time) (entities.Order, bool, error) {
		next, err := o.TransitionStatus(u.policy, requested, now)
		return next, err == nil, err
	})
}

func (u *OrderUseCase) UpdateDescription(ctx context.Context, orderID, description string) (entities.Order, error) {
	return u.mutate(ctx, orderID, "update-description", func(o entities.Order, now time.Time) (entities.Order, bool, error) {
		return o.UpdateDescription(description, now), true, nil
	})
}

// mutate runs one read-modify-write cycle. apply reports whether the order
// changed; unchanged orders are returned without a save.
func (u *OrderUseCase) mutate(
	ctx context.Context,
	orderID string,
	op string,
	apply func(o entities.Order, now time.Time) (entities.Order, bool, error),
) (entities.Order, error) {
	orderID, err := requireID(orderID, ErrInvalidOrderID)
	if err != nil {
		return entities.Order{}, err
	}
	log := u.log.With(zap.String("order_id", orderID), zap.String("op", op))

	current, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	next, changed, err := apply(current, u.now())
	if err != nil {
		if errors.Is(err, entities.ErrInvalidState) {
			log.Info("[order][usecase] mutation denied", zap.String("status", string(current.Status)), zap.Error(err))
		}
		return entities.Order{}, err
	}
	if !changed {
		return current, nil
	}

	saved, err := u.repos.Orders.Update(ctx, next)
	if err != nil {
		log.Error("[order][usecase] save failed", zap.Error(err))
		return entities.Order{}, persistenceErr("update order", err)
	}
	if saved.ID == "" {
		log.Warn("[order][usecase] version conflict", zap.Int64("version", next.Version))
		return entities.Order{}, ErrOrderConcurrentlyModified
	}
	log.Info("[order][usecase] order updated", zap.String("status", string(saved.Status)))
	return saved, nil
}

func (u *OrderUseCase) loadOrder(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.repos.Orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, persistenceErr("load order", err)
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) loadCustomer(ctx context.Context, id string) (entities.Customer, error) {
	c, err := u.repos.Customers.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, persistenceErr("load customer", err)
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *OrderUseCase) loadVehicle(ctx context.Context, id string) (entities.Vehicle, error) {
	v, err := u.repos.Vehicles.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, persistenceErr("load vehicle", err)
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}
