package usecase

import (
	"context"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=customer_usecase.go -destination=../adapter/http/handlers/mocks/customer_usecase_mock.go -package=mocks

type ICustomerUseCase interface {
	Create(ctx context.Context, in entities.CustomerInput) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, id string, in entities.CustomerInput) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, log *zap.Logger) *CustomerUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomerUseCase{repo: repo, log: log, now: utcNow}
}

func (u *CustomerUseCase) Create(ctx context.Context, in entities.CustomerInput) (entities.Customer, error) {
	c, err := entities.NewCustomer(in, u.now())
	if err != nil {
		return entities.Customer{}, err
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Customer{}, persistenceErr("create customer", err)
	}
	if created.ID == "" {
		return entities.Customer{}, ErrMissingEntityID
	}
	u.log.Info("[customer][usecase] customer created", zap.String("customer_id", created.ID))
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id, err := requireID(id, ErrInvalidCustomerID)
	if err != nil {
		return entities.Customer{}, err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, persistenceErr("load customer", err)
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistenceErr("list customers", err)
	}
	return items, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, in entities.CustomerInput) (entities.Customer, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	next, err := current.Apply(in, u.now())
	if err != nil {
		return entities.Customer{}, err
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Customer{}, persistenceErr("update customer", err)
	}
	if updated.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, nil
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, c.ID); err != nil {
		return persistenceErr("delete customer", err)
	}
	u.log.Info("[customer][usecase] customer deleted", zap.String("customer_id", c.ID))
	return nil
}
