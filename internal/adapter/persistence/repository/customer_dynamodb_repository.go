package repository

import (
	"context"
	"fmt"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Document  string `dynamodbav:"document"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists customers in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CustomerDynamoRepository struct {
	customers table[customerItem]
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{customers: newTable[customerItem](ddb, tableName, defaultCustomersTableName)}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = uuid.NewString()
	if _, err := r.customers.create(ctx, toCustomerItem(c)); err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	it, found, err := r.customers.get(ctx, id)
	if err != nil || !found {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	raw, err := r.customers.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(raw))
	for _, it := range raw {
		c, err := fromCustomerItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CustomerDynamoRepository) Update(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	ok, err := r.customers.replace(ctx, toCustomerItem(c))
	if err != nil || !ok {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.customers.delete(ctx, id)
}

func toCustomerItem(c entities.Customer) customerItem {
	return customerItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Document:  c.Document,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCustomerItem(it customerItem) (entities.Customer, error) {
	var times timeFields
	c := entities.Customer{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Document:  it.Document,
		CreatedAt: times.parse("created_at", it.CreatedAt),
		UpdatedAt: times.parse("updated_at", it.UpdatedAt),
	}
	if times.err != nil {
		return entities.Customer{}, fmt.Errorf("customer %s: %w", it.ID, times.err)
	}
	return c, nil
}
