package repository

import (
	"context"
	"fmt"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultMaterialsTableName = "materials"

type materialItem struct {
	ID                 string `dynamodbav:"id"`
	Name               string `dynamodbav:"name"`
	Description        string `dynamodbav:"description"`
	SalePriceCents     int64  `dynamodbav:"sale_price_cents"`
	InternalPriceCents int64  `dynamodbav:"internal_price_cents"`
	Quantity           int    `dynamodbav:"quantity"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// MaterialDynamoRepository persists stocked materials in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type MaterialDynamoRepository struct {
	materials table[materialItem]
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb DynamoAPI, tableName string) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{materials: newTable[materialItem](ddb, tableName, defaultMaterialsTableName)}
}

func (r *MaterialDynamoRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.ID = uuid.NewString()
	if _, err := r.materials.create(ctx, toMaterialItem(m)); err != nil {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) GetByID(ctx context.Context, id string) (entities.Material, error) {
	it, found, err := r.materials.get(ctx, id)
	if err != nil || !found {
		return entities.Material{}, err
	}
	return fromMaterialItem(it)
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	raw, err := r.materials.scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Material, 0, len(raw))
	for _, it := range raw {
		m, err := fromMaterialItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MaterialDynamoRepository) Update(ctx context.Context, m entities.Material) (entities.Material, error) {
	ok, err := r.materials.replace(ctx, toMaterialItem(m))
	if err != nil || !ok {
		return entities.Material{}, err
	}
	return m, nil
}

func (r *MaterialDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.materials.delete(ctx, id)
}

func toMaterialItem(m entities.Material) materialItem {
	return materialItem{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		SalePriceCents:     m.SalePrice.Cents(),
		InternalPriceCents: m.InternalPrice.Cents(),
		Quantity:           m.Quantity,
		CreatedAt:          formatTime(m.CreatedAt),
		UpdatedAt:          formatTime(m.UpdatedAt),
	}
}

func fromMaterialItem(it materialItem) (entities.Material, error) {
	sale, err := entities.NewMoney(it.SalePriceCents)
	if err != nil {
		return entities.Material{}, err
	}
	internal, err := entities.NewMoney(it.InternalPriceCents)
	if err != nil {
		return entities.Material{}, err
	}
	var times timeFields
	m := entities.Material{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		SalePrice:     sale,
		InternalPrice: internal,
		Quantity:      it.Quantity,
		CreatedAt:     times.parse("created_at", it.CreatedAt),
		UpdatedAt:     times.parse("updated_at", it.UpdatedAt),
	}
	if times.err != nil {
		return entities.Material{}, fmt.Errorf("material %s: %w", it.ID, times.err)
	}
	return m, nil
}
