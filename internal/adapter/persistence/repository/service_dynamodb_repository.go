package repository

import (
	"context"
	"fmt"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	PriceCents  int64  `dynamodbav:"price_cents"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists catalog services in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ServiceDynamoRepository struct {
	services table[serviceItem]
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{services: newTable[serviceItem](ddb, tableName, defaultServicesTableName)}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ID = uuid.NewString()
	if _, err := r.services.create(ctx, toServiceItem(s)); err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	it, found, err := r.services.get(ctx, id)
	if err != nil || !found {
		return entities.Service{}, err
	}
	return fromServiceItem(it)
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	raw, err := r.services.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(raw))
	for _, it := range raw {
		s, err := fromServiceItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	ok, err := r.services.replace(ctx, toServiceItem(s))
	if err != nil || !ok {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.services.delete(ctx, id)
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		PriceCents:  s.Price.Cents(),
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) (entities.Service, error) {
	price, err := entities.NewMoney(it.PriceCents)
	if err != nil {
		return entities.Service{}, err
	}
	var times timeFields
	s := entities.Service{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		CreatedAt:   times.parse("created_at", it.CreatedAt),
		UpdatedAt:   times.parse("updated_at", it.UpdatedAt),
	}
	if times.err != nil {
		return entities.Service{}, fmt.Errorf("service %s: %w", it.ID, times.err)
	}
	return s, nil
}
