package usecase

import (
	"context"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=material_usecase.go -destination=../adapter/http/handlers/mocks/material_usecase_mock.go -package=mocks

type IMaterialUseCase interface {
	Create(ctx context.Context, in entities.MaterialInput) (entities.Material, error)
	GetByID(ctx context.Context, id string) (entities.Material, error)
	List(ctx context.Context) ([]entities.Material, error)
	Update(ctx context.Context, id string, in entities.MaterialInput) (entities.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	repo interfaces.IMaterialRepository
	log  *zap.Logger
	now  func() time.Time
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, log *zap.Logger) *MaterialUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &MaterialUseCase{repo: repo, log: log, now: utcNow}
}

func (u *MaterialUseCase) Create(ctx context.Context, in entities.MaterialInput) (entities.Material, error) {
	m, err := entities.NewMaterial(in, u.now())
	if err != nil {
		return entities.Material{}, err
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Material{}, persistenceErr("create material", err)
	}
	if created.ID == "" {
		return entities.Material{}, ErrMissingEntityID
	}
	u.log.Info("[material][usecase] material created", zap.String("material_id", created.ID), zap.Int("quantity", created.Quantity))
	return created, nil
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id string) (entities.Material, error) {
	id, err := requireID(id, ErrInvalidMaterialID)
	if err != nil {
		return entities.Material{}, err
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, persistenceErr("load material", err)
	}
	if m.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *MaterialUseCase) List(ctx context.Context) ([]entities.Material, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, persistenceErr("list materials", err)
	}
	return items, nil
}

func (u *MaterialUseCase) Update(ctx context.Context, id string, in entities.MaterialInput) (entities.Material, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	next, err := current.Apply(in, u.now())
	if err != nil {
		return entities.Material{}, err
	}
	updated, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Material{}, persistenceErr("update material", err)
	}
	if updated.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return updated, nil
}

func (u *MaterialUseCase) Delete(ctx context.Context, id string) error {
	m, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, m.ID); err != nil {
		return persistenceErr("delete material", err)
	}
	return nil
}
