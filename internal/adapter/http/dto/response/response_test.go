package response

import (
	"testing"
	"time"

	"os_service_api/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	policy := entities.NewOrderPolicy(false)
	o, _ := entities.NewOrder("cus-1", "veh-1", "revisão", now)
	o.ID = "ord-1"
	svc, _ := entities.NewLineItemSnapshot("svc-1", "Troca de óleo", entities.MustMoney(9000))
	mat, _ := entities.NewLineItemSnapshot("mat-1", "Óleo 5W30", entities.MustMoney(6000))
	o, _ = o.AttachService(policy, svc, now)
	o, _ = o.AttachMaterial(policy, mat, now)

	res := FromOrder(o)
	if res.ID != "ord-1" || res.Status != "RECEBIDA" || res.ClosedAt != nil {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.Services) != 1 || res.Services[0].ItemID != "svc-1" || res.Services[0].AmountCents != 9000 {
		t.Fatalf("unexpected services: %+v", res.Services)
	}
	if res.Totals.MaterialsCents != 6000 || res.Totals.ServicesCents != 9000 || res.Totals.GrandCents != 15000 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}

	empty := FromOrder(entities.Order{})
	if empty.Services == nil || empty.Materials == nil {
		t.Fatalf("expected empty slices, got nil")
	}
}

func TestFromDetach(t *testing.T) {
	res := FromDetach(entities.Order{ID: "ord-1"}, entities.DetachResult{Removed: 0, Outcome: entities.DetachNotPresent})
	if res.Removed != 0 || res.Outcome != "not_present" || res.Order.ID != "ord-1" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromCatalog(t *testing.T) {
	s := FromService(entities.Service{ID: "svc-1", Name: "Alinhamento", Price: entities.MustMoney(15000)})
	if s.PriceCents != 15000 {
		t.Fatalf("unexpected service: %+v", s)
	}
	m := FromMaterials([]entities.Material{{ID: "mat-1", SalePrice: entities.MustMoney(4500), InternalPrice: entities.MustMoney(3000)}})
	if len(m) != 1 || m[0].SalePriceCents != 4500 || m[0].InternalPriceCents != 3000 {
		t.Fatalf("unexpected materials: %+v", m)
	}
	if got := FromCustomers(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestFromOrderPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.OrderPayment{
		ID:           "pay-1",
		OrderID:      "ord-1",
		Amount:       entities.MustMoney(15050),
		Date:         now,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: []byte(`{"id":1}`),
		MPPayload:    map[string]interface{}{"id": 1},
	}

	res := FromOrderPayment(p)
	if res.PaymentID != "pay-1" || res.OrderID != "ord-1" || res.AmountCents != 15050 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.Status != "aprovado" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.MPPayloadRaw != `{"id":1}` || res.MPPayload["id"] != 1 {
		t.Fatalf("unexpected payload fields: %+v", res)
	}
}
