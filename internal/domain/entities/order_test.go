package entities

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var permissive = NewOrderPolicy(false)

func newTestOrder(t *testing.T, now time.Time) Order {
	t.Helper()
	o, err := NewOrder("cus-1", "veh-1", " troca de pastilhas ", now)
	require.NoError(t, err)
	return o
}

func snapshot(t *testing.T, id string, cents int64) LineItemSnapshot {
	t.Helper()
	s, err := NewLineItemSnapshot(id, "item "+id, MustMoney(cents))
	require.NoError(t, err)
	return s
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	o := newTestOrder(t, now)
	require.Empty(t, o.ID)
	require.Equal(t, OrderStatusRecebida, o.Status)
	require.Equal(t, "troca de pastilhas", o.Description)
	require.Equal(t, now, o.OpenedAt)
	require.Equal(t, now, o.UpdatedAt)
	require.Nil(t, o.ClosedAt)
	require.Empty(t, o.Services)
	require.Empty(t, o.Materials)

	_, err := NewOrder(" ", "veh-1", "", now)
	require.ErrorIs(t, err, ErrBlankCustomerID)
	_, err = NewOrder("cus-1", "", "", now)
	require.ErrorIs(t, err, ErrBlankVehicleID)
}

func TestOrder_AttachService(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	t.Run("single service totals", func(t *testing.T) {
		o := newTestOrder(t, now)
		o, err := o.AttachService(permissive, snapshot(t, "svc-1", 15000), later)
		require.NoError(t, err)

		totals := o.ComputeTotals()
		require.True(t, totals.Services.Decimal().Equal(decimal.RequireFromString("150.00")))
		require.True(t, totals.Grand.Decimal().Equal(decimal.RequireFromString("150.00")))
		require.True(t, totals.Materials.IsZero())
		require.Equal(t, later, o.UpdatedAt)
	})

	t.Run("cancelled order rejects and keeps items", func(t *testing.T) {
		o := newTestOrder(t, now)
		o, err := o.AttachService(permissive, snapshot(t, "svc-1", 100), now)
		require.NoError(t, err)
		o, err = o.TransitionStatus(permissive, OrderStatusCancelada, now)
		require.NoError(t, err)

		got, err := o.AttachService(permissive, snapshot(t, "svc-2", 200), later)
		require.ErrorIs(t, err, ErrInvalidState)
		require.Len(t, got.Services, 1)
		require.Len(t, o.Services, 1)
		require.Equal(t, now, got.UpdatedAt)
	})

	t.Run("receiver is not modified", func(t *testing.T) {
		o := newTestOrder(t, now)
		next, err := o.AttachMaterial(permissive, snapshot(t, "mat-1", 500), later)
		require.NoError(t, err)
		require.Empty(t, o.Materials)
		require.Len(t, next.Materials, 1)
	})
}

func TestOrder_AttachClosedStatuses(t *testing.T) {
	now := time.Now().UTC()
	for _, status := range []OrderStatus{OrderStatusFinalizada, OrderStatusCancelada, OrderStatusReprovada, OrderStatusEntregue} {
		t.Run(string(status), func(t *testing.T) {
			o := newTestOrder(t, now)
			o.Status = status

			got, err := o.AttachService(permissive, snapshot(t, "svc-1", 100), now)
			require.ErrorIs(t, err, ErrInvalidState)
			require.Empty(t, got.Services)

			got, err = o.AttachMaterial(permissive, snapshot(t, "mat-1", 100), now)
			require.ErrorIs(t, err, ErrInvalidState)
			require.Empty(t, got.Materials)
		})
	}
}

func TestOrder_Detach(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)

	build := func(t *testing.T) Order {
		o := newTestOrder(t, now)
		var err error
		o, err = o.AttachService(permissive, snapshot(t, "svc-1", 1000), now)
		require.NoError(t, err)
		o, err = o.AttachService(permissive, snapshot(t, "svc-1", 1000), now)
		require.NoError(t, err)
		o, err = o.AttachMaterial(permissive, snapshot(t, "mat-1", 300), now)
		require.NoError(t, err)
		return o
	}

	t.Run("removes first match only", func(t *testing.T) {
		o := build(t)
		next, res, err := o.DetachService(permissive, "svc-1", later)
		require.NoError(t, err)
		require.Equal(t, DetachResult{Removed: 1, Outcome: DetachRemoved}, res)
		require.Len(t, next.Services, 1)
		require.Equal(t, later, next.UpdatedAt)
		require.Len(t, o.Services, 2)
	})

	t.Run("absent reference is a no-op", func(t *testing.T) {
		o := build(t)
		before := o.ComputeTotals()
		next, res, err := o.DetachMaterial(permissive, "mat-404", later)
		require.NoError(t, err)
		require.Equal(t, 0, res.Removed)
		require.Equal(t, DetachNotPresent, res.Outcome)
		require.Equal(t, before, next.ComputeTotals())
		require.Equal(t, now, next.UpdatedAt)
	})

	t.Run("allowed while awaiting approval", func(t *testing.T) {
		o := build(t)
		o.Status = OrderStatusAguardandoAprovacao
		next, res, err := o.DetachMaterial(permissive, "mat-1", later)
		require.NoError(t, err)
		require.Equal(t, DetachRemoved, res.Outcome)
		require.Empty(t, next.Materials)
	})

	for _, status := range OrderStatuses {
		if status.IsEditable() {
			continue
		}
		t.Run("denied in "+string(status), func(t *testing.T) {
			o := build(t)
			o.Status = status
			got, _, err := o.DetachService(permissive, "svc-1", later)
			require.ErrorIs(t, err, ErrInvalidState)
			require.Len(t, got.Services, 2)
			_, _, err = o.DetachMaterial(permissive, "mat-1", later)
			require.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestOrder_TransitionStatus(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	o := newTestOrder(t, t0)
	o, err := o.TransitionStatus(permissive, OrderStatusEmDiagnostico, t1)
	require.NoError(t, err)
	require.Nil(t, o.ClosedAt)
	require.Equal(t, t1, o.UpdatedAt)

	o, err = o.TransitionStatus(permissive, OrderStatusFinalizada, t2)
	require.NoError(t, err)
	require.NotNil(t, o.ClosedAt)
	require.Equal(t, t2, *o.ClosedAt)

	o, err = o.TransitionStatus(permissive, OrderStatusEntregue, t3)
	require.NoError(t, err)
	require.Equal(t, t2, *o.ClosedAt, "closed at is stamped once")

	o, err = o.TransitionStatus(permissive, OrderStatusFinalizada, t3)
	require.NoError(t, err)
	require.Equal(t, t2, *o.ClosedAt)

	got, err := o.TransitionStatus(permissive, OrderStatus("ARQUIVADA"), t3)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Equal(t, OrderStatusFinalizada, got.Status)
}

func TestOrder_UpdateDescription(t *testing.T) {
	t0 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	o := newTestOrder(t, t0)
	next := o.UpdateDescription("  barulho na suspensão ", t0.Add(time.Second))
	require.Equal(t, "barulho na suspensão", next.Description)
	require.Equal(t, t0.Add(time.Second), next.UpdatedAt)
	require.Equal(t, "troca de pastilhas", o.Description)
}

func TestOrder_ComputeTotals(t *testing.T) {
	now := time.Now().UTC()

	t.Run("material and service", func(t *testing.T) {
		o := newTestOrder(t, now)
		o, err := o.AttachMaterial(permissive, snapshot(t, "mat-1", 6000), now)
		require.NoError(t, err)
		o, err = o.AttachService(permissive, snapshot(t, "svc-1", 9000), now)
		require.NoError(t, err)

		totals := o.ComputeTotals()
		require.True(t, totals.Materials.Decimal().Equal(decimal.RequireFromString("60.00")))
		require.True(t, totals.Services.Decimal().Equal(decimal.RequireFromString("90.00")))
		require.True(t, totals.Grand.Decimal().Equal(decimal.RequireFromString("150.00")))
	})

	t.Run("grand total identity holds across random histories", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for run := 0; run < 50; run++ {
			o := newTestOrder(t, now)
			for step := 0; step < 40; step++ {
				id := fmt.Sprintf("item-%d", rng.Intn(5))
				cents := int64(rng.Intn(100000))
				switch rng.Intn(5) {
				case 0:
					if next, err := o.AttachService(permissive, snapshot(t, id, cents), now); err == nil {
						o = next
					}
				case 1:
					if next, err := o.AttachMaterial(permissive, snapshot(t, id, cents), now); err == nil {
						o = next
					}
				case 2:
					if next, _, err := o.DetachService(permissive, id, now); err == nil {
						o = next
					}
				case 3:
					if next, _, err := o.DetachMaterial(permissive, id, now); err == nil {
						o = next
					}
				case 4:
					next, err := o.TransitionStatus(permissive, OrderStatuses[rng.Intn(len(OrderStatuses))], now)
					require.NoError(t, err)
					o = next
				}
			}
			var sumServices, sumMaterials int64
			for _, s := range o.Services {
				sumServices += s.Amount().Cents()
			}
			for _, m := range o.Materials {
				sumMaterials += m.Amount().Cents()
			}
			totals := o.ComputeTotals()
			require.Equal(t, sumServices, totals.Services.Cents())
			require.Equal(t, sumMaterials, totals.Materials.Cents())
			grand, err := totals.Services.Add(totals.Materials)
			require.NoError(t, err)
			require.Equal(t, grand, totals.Grand)
		}
	})
}

func TestOrder_TotalsStayInRange(t *testing.T) {
	now := time.Now().UTC()
	expensive := snapshot(t, "mat-1", MaxMoneyCents)

	t.Run("second attach past the maximum is rejected", func(t *testing.T) {
		o, err := newTestOrder(t, now).AttachMaterial(permissive, expensive, now)
		require.NoError(t, err)

		next, err := o.AttachMaterial(permissive, expensive, now.Add(time.Minute))
		require.ErrorIs(t, err, ErrOrderTotalTooLarge)
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Len(t, next.Materials, 1)
		require.Equal(t, o.UpdatedAt, next.UpdatedAt)

		_, err = o.AttachService(permissive, snapshot(t, "svc-1", 1), now)
		require.ErrorIs(t, err, ErrOrderTotalTooLarge)

		totals := o.ComputeTotals()
		require.Equal(t, MaxMoneyCents, totals.Grand.Cents())
		require.Equal(t, "1000000000000.00", o.ToPresentation(permissive, Customer{}, Vehicle{}).GrandTotal)
	})

	t.Run("order built around attach never reports a negative total", func(t *testing.T) {
		o := newTestOrder(t, now)
		o.Materials = []LineItemSnapshot{expensive, expensive}

		_, err := o.Totals()
		require.ErrorIs(t, err, ErrOrderTotalTooLarge)
		require.ErrorIs(t, o.CheckTotals(), ErrOrderTotalTooLarge)

		totals := o.ComputeTotals()
		require.GreaterOrEqual(t, totals.Materials.Cents(), int64(0))
		require.GreaterOrEqual(t, totals.Grand.Cents(), int64(0))
	})
}

func TestCheckCreationGuard(t *testing.T) {
	order := func(status OrderStatus) Order {
		return Order{ID: "o-" + string(status), CustomerID: "cus-1", Status: status}
	}

	t.Run("no orders", func(t *testing.T) {
		require.NoError(t, CheckCreationGuard("cus-1", nil))
	})

	t.Run("only finished orders", func(t *testing.T) {
		require.NoError(t, CheckCreationGuard("cus-1", []Order{order(OrderStatusFinalizada), order(OrderStatusFinalizada)}))
	})

	t.Run("one order in execution", func(t *testing.T) {
		err := CheckCreationGuard("cus-1", []Order{order(OrderStatusEmExecucao)})
		require.ErrorIs(t, err, ErrConflict)
		var unfinished *UnfinishedOrdersError
		require.ErrorAs(t, err, &unfinished)
		require.Equal(t, 1, unfinished.Count)
		require.Equal(t, "customer has 1 unfinished order(s)", err.Error())
	})

	t.Run("counts every status other than finalizada", func(t *testing.T) {
		existing := make([]Order, 0, len(OrderStatuses))
		for _, s := range OrderStatuses {
			existing = append(existing, order(s))
		}
		err := CheckCreationGuard("cus-1", existing)
		var unfinished *UnfinishedOrdersError
		require.ErrorAs(t, err, &unfinished)
		require.Equal(t, len(OrderStatuses)-1, unfinished.Count)
	})

	t.Run("ignores other customers", func(t *testing.T) {
		other := order(OrderStatusRecebida)
		other.CustomerID = "cus-2"
		require.NoError(t, CheckCreationGuard("cus-1", []Order{other}))
	})
}
