package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
	mock_interfaces "os_service_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	orders    *mock_interfaces.MockIOrderRepository
	customers *mock_interfaces.MockICustomerRepository
	vehicles  *mock_interfaces.MockIVehicleRepository
	services  *mock_interfaces.MockIServiceRepository
	materials *mock_interfaces.MockIMaterialRepository
}

var fixedNow = time.Date(2025, 5, 20, 14, 30, 0, 0, time.UTC)

func newOrderUseCase(t *testing.T, strict bool) (*OrderUseCase, orderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orderMocks{
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		services:  mock_interfaces.NewMockIServiceRepository(ctrl),
		materials: mock_interfaces.NewMockIMaterialRepository(ctrl),
	}
	uc := NewOrderUseCase(OrderRepositories{
		Orders:    m.orders,
		Customers: m.customers,
		Vehicles:  m.vehicles,
		Services:  m.services,
		Materials: m.materials,
	}, entities.NewOrderPolicy(strict), nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func storedOrder(status entities.OrderStatus) entities.Order {
	o, _ := entities.NewOrder("cus-1", "veh-1", "revisão", fixedNow.Add(-time.Hour))
	o.ID = "ord-1"
	o.Status = status
	o.Version = 3
	return o
}

func mustSnapshot(t *testing.T, id string, cents int64) entities.LineItemSnapshot {
	t.Helper()
	s, err := entities.NewLineItemSnapshot(id, "item "+id, entities.MustMoney(cents))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func echoUpdate(_ context.Context, o entities.Order) (entities.Order, error) {
	o.Version++
	return o, nil
}

func TestOrderUseCase_Create(t *testing.T) {
	customer := entities.Customer{ID: "cus-1", Name: "Maria"}
	vehicle := entities.Vehicle{ID: "veh-1", CustomerID: "cus-1"}

	t.Run("blank ids", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, false)
		if _, err := uc.Create(context.Background(), " ", "veh-1", ""); !errors.Is(err, entities.ErrBlankCustomerID) {
			t.Fatalf("expected ErrBlankCustomerID, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "cus-1", "", ""); !errors.Is(err, entities.ErrBlankVehicleID) {
			t.Fatalf("expected ErrBlankVehicleID, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), "cus-1", "veh-1", "")
		if !errors.Is(err, ErrCustomerNotFound) || !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(customer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

		_, err := uc.Create(context.Background(), "cus-1", "veh-1", "")
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("vehicle of another customer", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(customer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", CustomerID: "cus-2"}, nil)

		_, err := uc.Create(context.Background(), "cus-1", "veh-1", "")
		if !errors.Is(err, entities.ErrVehicleCustomerMismatch) {
			t.Fatalf("expected ErrVehicleCustomerMismatch, got %v", err)
		}
	})

	t.Run("customer with unfinished order", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(customer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		m.orders.EXPECT().ListByCustomerID(gomock.Any(), "cus-1", entities.OrderStatusFinalizada).
			Return([]entities.Order{storedOrder(entities.OrderStatusEmExecucao)}, nil)

		_, err := uc.Create(context.Background(), "cus-1", "veh-1", "")
		var unfinished *entities.UnfinishedOrdersError
		if !errors.As(err, &unfinished) || unfinished.Count != 1 {
			t.Fatalf("expected UnfinishedOrdersError with count 1, got %v", err)
		}
		if !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected conflict kind, got %v", err)
		}
	})

	t.Run("list error is a persistence failure", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(customer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		m.orders.EXPECT().ListByCustomerID(gomock.Any(), "cus-1", entities.OrderStatusFinalizada).Return(nil, errors.New("db"))

		_, err := uc.Create(context.Background(), "cus-1", "veh-1", "")
		if !errors.Is(err, entities.ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("repository returns order without id", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(customer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		m.orders.EXPECT().ListByCustomerID(gomock.Any(), "cus-1", entities.OrderStatusFinalizada).Return(nil, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.Create(context.Background(), "cus-1", "veh-1", "")
		if !errors.Is(err, entities.ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(customer, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(vehicle, nil)
		m.orders.EXPECT().ListByCustomerID(gomock.Any(), "cus-1", entities.OrderStatusFinalizada).
			Return([]entities.Order{storedOrder(entities.OrderStatusFinalizada)}, nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID != "" || o.Status != entities.OrderStatusRecebida || o.ClosedAt != nil {
					t.Fatalf("unexpected order: %+v", o)
				}
				if !o.OpenedAt.Equal(fixedNow) || len(o.Services) != 0 || len(o.Materials) != 0 {
					t.Fatalf("unexpected order: %+v", o)
				}
				o.ID = "ord-new"
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), " cus-1 ", " veh-1 ", "barulho no freio")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "ord-new" || res.Description != "barulho no freio" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestOrderUseCase_AttachService(t *testing.T) {
	t.Run("snapshots current price and saves", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusRecebida), nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Alinhamento", Price: entities.MustMoney(15000)}, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, err := uc.AttachService(context.Background(), "ord-1", "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Services) != 1 || res.Services[0].Amount().Cents() != 15000 || res.Services[0].Name() != "Alinhamento" {
			t.Fatalf("unexpected services: %+v", res.Services)
		}
		if got := res.ComputeTotals().Grand.String(); got != "150.00" {
			t.Fatalf("expected 150.00, got %s", got)
		}
		if !res.UpdatedAt.Equal(fixedNow) || res.Version != 4 {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("closed order is rejected before the lookup", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusCancelada), nil)

		_, err := uc.AttachService(context.Background(), "ord-1", "svc-1")
		if !errors.Is(err, entities.ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusRecebida), nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-404").Return(entities.Service{}, nil)

		_, err := uc.AttachService(context.Background(), "ord-1", "svc-404")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-404").Return(entities.Order{}, nil)

		_, err := uc.AttachService(context.Background(), "ord-404", "svc-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusRecebida), nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Alinhamento", Price: entities.MustMoney(100)}, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Order{}, nil)

		_, err := uc.AttachService(context.Background(), "ord-1", "svc-1")
		if !errors.Is(err, ErrOrderConcurrentlyModified) || !errors.Is(err, entities.ErrConflict) {
			t.Fatalf("expected ErrOrderConcurrentlyModified, got %v", err)
		}
	})

	t.Run("save error", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusRecebida), nil)
		m.services.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Alinhamento", Price: entities.MustMoney(100)}, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		res, err := uc.AttachService(context.Background(), "ord-1", "svc-1")
		if !errors.Is(err, entities.ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
		if res.ID != "" {
			t.Fatalf("expected no order on failure, got %+v", res)
		}
	})
}

func TestOrderUseCase_AttachMaterial(t *testing.T) {
	t.Run("uses internal price", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusEmExecucao), nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "mat-1").Return(entities.Material{
			ID: "mat-1", Name: "Óleo 5W30", SalePrice: entities.MustMoney(8000), InternalPrice: entities.MustMoney(6000),
		}, nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, err := uc.AttachMaterial(context.Background(), "ord-1", "mat-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := res.ComputeTotals().Materials.Cents(); got != 6000 {
			t.Fatalf("expected 6000, got %d", got)
		}
	})

	t.Run("total past the maximum is rejected without save", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		stored := storedOrder(entities.OrderStatusRecebida)
		stored.Materials = []entities.LineItemSnapshot{mustSnapshot(t, "mat-1", entities.MaxMoneyCents)}
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(stored, nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "mat-1").Return(entities.Material{
			ID: "mat-1", Name: "Motor", SalePrice: entities.MustMoney(entities.MaxMoneyCents), InternalPrice: entities.MustMoney(entities.MaxMoneyCents),
		}, nil)

		_, err := uc.AttachMaterial(context.Background(), "ord-1", "mat-1")
		if !errors.Is(err, entities.ErrOrderTotalTooLarge) || !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrOrderTotalTooLarge, got %v", err)
		}
	})

	t.Run("invalid material id", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, false)
		_, err := uc.AttachMaterial(context.Background(), "ord-1", " ")
		if !errors.Is(err, ErrInvalidMaterialID) {
			t.Fatalf("expected ErrInvalidMaterialID, got %v", err)
		}
	})

	t.Run("material not found", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusRecebida), nil)
		m.materials.EXPECT().GetByID(gomock.Any(), "mat-404").Return(entities.Material{}, nil)

		_, err := uc.AttachMaterial(context.Background(), "ord-1", "mat-404")
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_Detach(t *testing.T) {
	withItems := func(t *testing.T, status entities.OrderStatus) entities.Order {
		o := storedOrder(entities.OrderStatusRecebida)
		policy := entities.NewOrderPolicy(false)
		var err error
		if o, err = o.AttachService(policy, mustSnapshot(t, "svc-1", 9000), fixedNow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o, err = o.AttachMaterial(policy, mustSnapshot(t, "mat-1", 6000), fixedNow); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		o.Status = status
		return o
	}

	t.Run("removes and saves", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(withItems(t, entities.OrderStatusRecebida), nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		res, detach, err := uc.DetachService(context.Background(), "ord-1", "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detach.Removed != 1 || detach.Outcome != entities.DetachRemoved {
			t.Fatalf("unexpected result: %+v", detach)
		}
		if len(res.Services) != 0 || res.ComputeTotals().Grand.Cents() != 6000 {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("absent item is a no-op without save", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(withItems(t, entities.OrderStatusAguardandoAprovacao), nil)

		res, detach, err := uc.DetachMaterial(context.Background(), "ord-1", "mat-404")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detach.Removed != 0 || detach.Outcome != entities.DetachNotPresent {
			t.Fatalf("unexpected result: %+v", detach)
		}
		if res.ComputeTotals().Grand.Cents() != 15000 {
			t.Fatalf("totals changed: %+v", res.ComputeTotals())
		}
	})

	t.Run("not editable", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(withItems(t, entities.OrderStatusEmExecucao), nil)

		_, _, err := uc.DetachMaterial(context.Background(), "ord-1", "mat-1")
		if !errors.Is(err, entities.ErrOrderNotEditable) {
			t.Fatalf("expected ErrOrderNotEditable, got %v", err)
		}
	})
}

func TestOrderUseCase_TransitionStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, false)
		_, err := uc.TransitionStatus(context.Background(), "ord-1", "PAGA")
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("finalizada stamps closed at", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusEmDiagnostico), nil)
		m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Version != 3 {
					t.Fatalf("expected the loaded version to be sent, got %d", o.Version)
				}
				o.Version++
				return o, nil
			},
		)

		res, err := uc.TransitionStatus(context.Background(), "ord-1", "finalizada")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OrderStatusFinalizada || res.ClosedAt == nil || !res.ClosedAt.Equal(fixedNow) {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("strict policy rejects skipping steps", func(t *testing.T) {
		uc, m := newOrderUseCase(t, true)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusRecebida), nil)

		_, err := uc.TransitionStatus(context.Background(), "ord-1", "FINALIZADA")
		if !errors.Is(err, entities.ErrStatusTransitionDenied) {
			t.Fatalf("expected ErrStatusTransitionDenied, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateDescription(t *testing.T) {
	uc, m := newOrderUseCase(t, false)
	m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusEntregue), nil)
	m.orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	res, err := uc.UpdateDescription(context.Background(), "ord-1", " cliente pediu orçamento ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Description != "cliente pediu orçamento" {
		t.Fatalf("unexpected description %q", res.Description)
	}
}

func TestOrderUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc, _ := newOrderUseCase(t, false)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("GetByID repo error", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))
		if _, err := uc.GetByID(context.Background(), "ord-1"); !errors.Is(err, entities.ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("GetPresentation", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusRecebida), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1", Name: "Maria"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1", Plate: "ABC1D23"}, nil)

		p, err := uc.GetPresentation(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Customer.Name != "Maria" || p.Vehicle.Plate != "ABC1D23" || p.OpenedAt != "20/05/2025 13:30:00" {
			t.Fatalf("unexpected presentation: %+v", p)
		}
	})

	t.Run("GetPresentation lists strict transitions", func(t *testing.T) {
		uc, m := newOrderUseCase(t, true)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder(entities.OrderStatusFinalizada), nil)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)
		m.vehicles.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{ID: "veh-1"}, nil)

		p, err := uc.GetPresentation(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.AllowedTransitions) != 1 || p.AllowedTransitions[0] != entities.OrderStatusEntregue {
			t.Fatalf("unexpected allowed transitions: %v", p.AllowedTransitions)
		}
	})

	t.Run("ListByCustomer", func(t *testing.T) {
		uc, m := newOrderUseCase(t, false)
		m.customers.EXPECT().GetByID(gomock.Any(), "cus-1").Return(entities.Customer{ID: "cus-1"}, nil)
		m.orders.EXPECT().ListByCustomerID(gomock.Any(), "cus-1", entities.OrderStatus("")).
			Return([]entities.Order{storedOrder(entities.OrderStatusFinalizada)}, nil)

		res, err := uc.ListByCustomer(context.Background(), "cus-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 order, got %d", len(res))
		}
	})
}
