package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
	mock_interfaces "os_service_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func payableOrder(t *testing.T, status entities.OrderStatus) entities.Order {
	t.Helper()
	o := storedOrder(entities.OrderStatusRecebida)
	o, err := o.AttachService(entities.NewOrderPolicy(false), mustSnapshot(t, "svc-1", 15050), fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	o.Status = status
	return o
}

func TestOrderPaymentUseCase_PayOrder_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayOrder(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayOrder(context.Background(), "ord-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("payload is not an object", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayOrder(context.Background(), "ord-1", json.RawMessage(`[1,2]`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewOrderPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.PayOrder(context.Background(), "ord-1", nil)
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestOrderPaymentUseCase_PayOrder_OrderChecks(t *testing.T) {
	cases := []struct {
		name  string
		order func(t *testing.T) entities.Order
		err   error
		want  error
	}{
		{name: "repo error", order: func(*testing.T) entities.Order { return entities.Order{} }, err: errors.New("db"), want: entities.ErrPersistenceFailure},
		{name: "not found", order: func(*testing.T) entities.Order { return entities.Order{} }, want: ErrOrderNotFound},
		{name: "not payable", order: func(t *testing.T) entities.Order { return payableOrder(t, entities.OrderStatusEmExecucao) }, want: entities.ErrOrderNotPayable},
		{name: "nothing to charge", order: func(*testing.T) entities.Order { return storedOrder(entities.OrderStatusFinalizada) }, want: ErrOrderHasNothingToCharge},
		{name: "total past the maximum", order: func(t *testing.T) entities.Order {
			o := storedOrder(entities.OrderStatusFinalizada)
			top := mustSnapshot(t, "mat-1", entities.MaxMoneyCents)
			o.Materials = []entities.LineItemSnapshot{top, top}
			return o
		}, want: entities.ErrOrderTotalTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewOrderPaymentUseCase(repo, orders, gateway, nil)

			orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(tc.order(t), tc.err)

			_, err := uc.PayOrder(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix"}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestOrderPaymentUseCase_PayOrder_Gateway(t *testing.T) {
	t.Run("enriches payload and persists payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orders, gateway, nil)
		uc.now = func() time.Time { return fixedNow }

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(payableOrder(t, entities.OrderStatusFinalizada), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway received invalid json: %v", err)
				}
				if m["transaction_amount"] != 150.5 {
					t.Fatalf("expected transaction_amount 150.5, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "ord-1" || m["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %v", m)
				}
				payer, _ := m["payer"].(map[string]any)
				if payer["type"] != "customer" {
					t.Fatalf("expected payer defaults, got %v", m["payer"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				return p, nil
			},
		)

		p, err := uc.PayOrder(context.Background(), "ord-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-123" || p.OrderID != "ord-1" || p.Status != entities.PaymentStatusAprovado {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.Amount.Cents() != 15050 || !p.Date.Equal(fixedNow) || p.MPPayload["status"] != "approved" {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := map[string]error{
			`{"message":"Customer not found","status":404}`:                  ErrPaymentGatewayCustomerNotFound,
			`{"message":"Invalid users involved","code":2034}`:               ErrPaymentGatewayInvalidUsers,
			`{"error":"unauthorized","status":401}`:                          ErrPaymentGatewayUnauthorized,
			`{"error":"bad_request","message":"invalid card","status":400}`: ErrPaymentGatewayBadRequest,
		}
		for body, want := range cases {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewOrderPaymentUseCase(repo, orders, gateway, nil)

			orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(payableOrder(t, entities.OrderStatusEntregue), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(body))

			_, err := uc.PayOrder(context.Background(), "ord-1", nil)
			if !errors.Is(err, want) {
				t.Fatalf("body %s: expected %v, got %v", body, want, err)
			}
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewOrderPaymentUseCase(repo, orders, gateway, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(payableOrder(t, entities.OrderStatusFinalizada), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "pending", json.RawMessage(`{}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.OrderPayment{}, errors.New("db"))

		_, err := uc.PayOrder(context.Background(), "ord-1", nil)
		if !errors.Is(err, entities.ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}

func TestOrderPaymentUseCase_ListByOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
	uc := NewOrderPaymentUseCase(repo, nil, nil, nil)

	if _, err := uc.ListByOrderID(context.Background(), ""); !errors.Is(err, ErrInvalidOrderID) {
		t.Fatalf("expected ErrInvalidOrderID, got %v", err)
	}

	repo.EXPECT().ListByOrderID(gomock.Any(), "ord-1").Return([]entities.OrderPayment{{ID: "p-1", OrderID: "ord-1"}}, nil)
	items, err := uc.ListByOrderID(context.Background(), "ord-1")
	if err != nil || len(items) != 1 {
		t.Fatalf("unexpected result: %v %v", items, err)
	}
}
