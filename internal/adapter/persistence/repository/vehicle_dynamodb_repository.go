package repository

import (
	"context"
	"fmt"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultVehiclesTableName = "vehicles"
	vehiclesCustomerIDIndex  = "customer_id-index"
)

type vehicleItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Plate      string `dynamodbav:"plate"`
	Brand      string `dynamodbav:"brand"`
	Model      string `dynamodbav:"model"`
	Year       int    `dynamodbav:"year"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// VehicleDynamoRepository persists vehicles in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
type VehicleDynamoRepository struct {
	vehicles table[vehicleItem]
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoAPI, tableName string) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{vehicles: newTable[vehicleItem](ddb, tableName, defaultVehiclesTableName)}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.ID = uuid.NewString()
	if _, err := r.vehicles.create(ctx, toVehicleItem(v)); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	it, found, err := r.vehicles.get(ctx, id)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it)
}

func (r *VehicleDynamoRepository) List(ctx context.Context) ([]entities.Vehicle, error) {
	raw, err := r.vehicles.scan(ctx)
	if err != nil {
		return nil, err
	}
	return fromVehicleItems(raw)
}

func (r *VehicleDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error) {
	raw, err := r.vehicles.queryIndex(ctx, vehiclesCustomerIDIndex, "customer_id", customerID, "", nil, nil)
	if err != nil {
		return nil, err
	}
	return fromVehicleItems(raw)
}

func (r *VehicleDynamoRepository) Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	ok, err := r.vehicles.replace(ctx, toVehicleItem(v))
	if err != nil || !ok {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) error {
	return r.vehicles.delete(ctx, id)
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Plate:      v.Plate,
		Brand:      v.Brand,
		Model:      v.Model,
		Year:       v.Year,
		CreatedAt:  formatTime(v.CreatedAt),
		UpdatedAt:  formatTime(v.UpdatedAt),
	}
}

func fromVehicleItems(raw []vehicleItem) ([]entities.Vehicle, error) {
	out := make([]entities.Vehicle, 0, len(raw))
	for _, it := range raw {
		v, err := fromVehicleItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func fromVehicleItem(it vehicleItem) (entities.Vehicle, error) {
	var times timeFields
	v := entities.Vehicle{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Plate:      it.Plate,
		Brand:      it.Brand,
		Model:      it.Model,
		Year:       it.Year,
		CreatedAt:  times.parse("created_at", it.CreatedAt),
		UpdatedAt:  times.parse("updated_at", it.UpdatedAt),
	}
	if times.err != nil {
		return entities.Vehicle{}, fmt.Errorf("vehicle %s: %w", it.ID, times.err)
	}
	return v, nil
}
