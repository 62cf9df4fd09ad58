package usecase

import (
	"context"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=vehicle_usecase.go -destination=../adapter/http/handlers/mocks/vehicle_usecase_mock.go -package=mocks

type IVehicleUseCase interface {
	Create(ctx context.Context, in entities.VehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context) ([]entities.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	Update(ctx context.Context, id string, in entities.VehicleInput) (entities.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
	log       *zap.Logger
	now       func() time.Time
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository, log *zap.Logger) *VehicleUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &VehicleUseCase{repo: repo, customers: customers, log: log, now: utcNow}
}

func (u *VehicleUseCase) Create(ctx context.Context, in entities.VehicleInput) (entities.Vehicle, error) {
	v, err := entities.NewVehicle(in, u.now())
	if err != nil {
		return entities.Vehicle{}, err
	}
	if err := u.ensureCustomer(ctx, v.CustomerID); err != nil {
		return entities.Vehicle{}, err
	}
	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, persistenceErr("create vehicle", err)
	}
	if created.ID == "" {
		return entities.Vehicle{}, ErrMissingEntityID
	}
	u.log.Info("[vehicle][usecase] vehicle created", zap.String("vehicle_id", created.ID), zap.String("customer_id", created.CustomerID))
	return created, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id, err := requireID(id, ErrInvalidVehicleID)
	if err != nil {
		return entities.Vehicle{}, err
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, persistenceErr("load vehicle", err)
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistenceErr("list vehicles", err)
	}
	return items, nil
}

func (u *VehicleUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	customerID, err := requireID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, persistenceErr("list customer vehicles", err)
	}
	return items, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, id string, in entities.VehicleInput) (entities.Vehicle, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	next, err := current.Apply(in, u.now())
	if err != nil {
		return entities.Vehicle{}, err
	}
	if next.CustomerID != current.CustomerID {
		if err := u.ensureCustomer(ctx, next.CustomerID); err != nil {
			return entities.Vehicle{}, err
		}
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Vehicle{}, persistenceErr("update vehicle", err)
	}
	if updated.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, nil
}

func (u *VehicleUseCase) Delete(ctx context.Context, id string) error {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, v.ID); err != nil {
		return persistenceErr("delete vehicle", err)
	}
	return nil
}

func (u *VehicleUseCase) ensureCustomer(ctx context.Context, customerID string) error {
	c, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return persistenceErr("load customer", err)
	}
	if c.ID == "" {
		return ErrCustomerNotFound
	}
	return nil
}
