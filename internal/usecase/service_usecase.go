package usecase

import (
	"context"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=service_usecase.go -destination=../adapter/http/handlers/mocks/service_usecase_mock.go -package=mocks

// IServiceUseCase manages the catalog of billable services. Price changes only
// affect orders that attach the service afterwards.

type IServiceUseCase interface {
	Create(ctx context.Context, in entities.ServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, id string, in entities.ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository, log *zap.Logger) *ServiceUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceUseCase{repo: repo, log: log, now: utcNow}
}

func (u *ServiceUseCase) Create(ctx context.Context, in entities.ServiceInput) (entities.Service, error) {
	s, err := entities.NewService(in, u.now())
	if err != nil {
		return entities.Service{}, err
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Service{}, persistenceErr("create service", err)
	}
	if created.ID == "" {
		return entities.Service{}, ErrMissingEntityID
	}
	u.log.Info("[service][usecase] service created", zap.String("service_id", created.ID), zap.Int64("price_cents", created.Price.Cents()))
	return created, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id, err := requireID(id, ErrInvalidServiceID)
	if err != nil {
		return entities.Service{}, err
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, persistenceErr("load service", err)
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistenceErr("list services", err)
	}
	return items, nil
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, in entities.ServiceInput) (entities.Service, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	next, err := current.Apply(in, u.now())
	if err != nil {
		return entities.Service{}, err
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Service{}, persistenceErr("update service", err)
	}
	if updated.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, s.ID); err != nil {
		return persistenceErr("delete service", err)
	}
	return nil
}
