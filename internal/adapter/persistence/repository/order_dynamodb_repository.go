package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultOrdersTableName = "orders"
	ordersCustomerIDIndex  = "customer_id-index"
)

type lineItemRecord struct {
	ItemID string `dynamodbav:"item_id"`
	Name   string `dynamodbav:"name"`
	Amount int64  `dynamodbav:"amount"`
}

type orderItem struct {
	ID          string           `dynamodbav:"id"`
	CustomerID  string           `dynamodbav:"customer_id"`
	VehicleID   string           `dynamodbav:"vehicle_id"`
	Status      string           `dynamodbav:"status"`
	Description string           `dynamodbav:"description"`
	OpenedAt    string           `dynamodbav:"opened_at"`
	ClosedAt    string           `dynamodbav:"closed_at,omitempty"`
	UpdatedAt   string           `dynamodbav:"updated_at"`
	Services    []lineItemRecord `dynamodbav:"services"`
	Materials   []lineItemRecord `dynamodbav:"materials"`
	Version     int64            `dynamodbav:"version"`
}

// OrderDynamoRepository persists work orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Every write carries a version number. Update only succeeds when the stored
// version still matches the one the order was loaded with.
type OrderDynamoRepository struct {
	orders table[orderItem]
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{orders: newTable[orderItem](ddb, tableName, defaultOrdersTableName)}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = uuid.NewString()
	o.Version = 1
	ok, err := r.orders.create(ctx, toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, fmt.Errorf("order %s already exists", o.ID)
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	it, found, err := r.orders.get(ctx, id)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it)
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	expected := o.Version
	o.Version = expected + 1
	ok, err := r.orders.put(ctx, toOrderItem(o),
		"#version = :expected",
		map[string]string{"#version": "version"},
		map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	)
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, nil
	}
	return o, nil
}

func (r *OrderDynamoRepository) ListByCustomerID(ctx context.Context, customerID string, excludeStatus entities.OrderStatus) ([]entities.Order, error) {
	var (
		filter string
		names  map[string]string
		values map[string]types.AttributeValue
	)
	if excludeStatus != "" {
		filter = "#status <> :excluded"
		names = map[string]string{"#status": "status"}
		values = map[string]types.AttributeValue{
			":excluded": &types.AttributeValueMemberS{Value: string(excludeStatus)},
		}
	}
	raw, err := r.orders.queryIndex(ctx, ordersCustomerIDIndex, "customer_id", customerID, filter, names, values)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Order, 0, len(raw))
	for _, it := range raw {
		o, err := fromOrderItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OpenedAt.Before(out[j].OpenedAt) })
	return out, nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		VehicleID:   o.VehicleID,
		Status:      string(o.Status),
		Description: o.Description,
		OpenedAt:    formatTime(o.OpenedAt),
		UpdatedAt:   formatTime(o.UpdatedAt),
		Services:    toLineItemRecords(o.Services),
		Materials:   toLineItemRecords(o.Materials),
		Version:     o.Version,
	}
	if o.ClosedAt != nil {
		it.ClosedAt = formatTime(*o.ClosedAt)
	}
	return it
}

func fromOrderItem(it orderItem) (entities.Order, error) {
	services, err := fromLineItemRecords(it.Services)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s services: %w", it.ID, err)
	}
	materials, err := fromLineItemRecords(it.Materials)
	if err != nil {
		return entities.Order{}, fmt.Errorf("order %s materials: %w", it.ID, err)
	}
	var times timeFields
	o := entities.Order{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		VehicleID:   it.VehicleID,
		Status:      entities.OrderStatus(it.Status),
		Description: it.Description,
		OpenedAt:    times.parse("opened_at", it.OpenedAt),
		UpdatedAt:   times.parse("updated_at", it.UpdatedAt),
		Services:    services,
		Materials:   materials,
		Version:     it.Version,
	}
	if it.ClosedAt != "" {
		closedAt := times.parse("closed_at", it.ClosedAt)
		o.ClosedAt = &closedAt
	}
	if times.err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", it.ID, times.err)
	}
	if err := o.CheckTotals(); err != nil {
		return entities.Order{}, fmt.Errorf("order %s: %w", it.ID, err)
	}
	return o, nil
}

func toLineItemRecords(items []entities.LineItemSnapshot) []lineItemRecord {
	out := make([]lineItemRecord, 0, len(items))
	for _, s := range items {
		out = append(out, lineItemRecord{ItemID: s.ItemID(), Name: s.Name(), Amount: s.Amount().Cents()})
	}
	return out
}

func fromLineItemRecords(records []lineItemRecord) ([]entities.LineItemSnapshot, error) {
	out := make([]entities.LineItemSnapshot, 0, len(records))
	for _, rec := range records {
		amount, err := entities.NewMoney(rec.Amount)
		if err != nil {
			return nil, err
		}
		s, err := entities.NewLineItemSnapshot(rec.ItemID, rec.Name, amount)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
