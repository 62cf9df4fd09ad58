package entities

import "strings"

// OrderStatus is the work order (OS) lifecycle status.
//
// Business flow:
//
//	RECEBIDA -> EM_DIAGNOSTICO -> AGUARDANDO_APROVACAO -> APROVADA -> EM_EXECUCAO -> FINALIZADA -> ENTREGUE
//
// REPROVADA and CANCELADA can be reached from any non-terminal status.
type OrderStatus string

const (
	OrderStatusRecebida            OrderStatus = "RECEBIDA"
	OrderStatusEmDiagnostico       OrderStatus = "EM_DIAGNOSTICO"
	OrderStatusAguardandoAprovacao OrderStatus = "AGUARDANDO_APROVACAO"
	OrderStatusAprovada            OrderStatus = "APROVADA"
	OrderStatusEmExecucao          OrderStatus = "EM_EXECUCAO"
	OrderStatusFinalizada          OrderStatus = "FINALIZADA"
	OrderStatusEntregue            OrderStatus = "ENTREGUE"
	OrderStatusReprovada           OrderStatus = "REPROVADA"
	OrderStatusCancelada           OrderStatus = "CANCELADA"
)

// OrderStatuses lists every known status in business-flow order.
var OrderStatuses = []OrderStatus{
	OrderStatusRecebida,
	OrderStatusEmDiagnostico,
	OrderStatusAguardandoAprovacao,
	OrderStatusAprovada,
	OrderStatusEmExecucao,
	OrderStatusFinalizada,
	OrderStatusEntregue,
	OrderStatusReprovada,
	OrderStatusCancelada,
}

// ParseOrderStatus accepts a status name in any letter case.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsKnown() {
		return "", ErrUnknownOrderStatus
	}
	return s, nil
}

func (s OrderStatus) IsKnown() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsClosed reports whether no more line items can be attached.
func (s OrderStatus) IsClosed() bool {
	switch s {
	case OrderStatusFinalizada, OrderStatusCancelada, OrderStatusReprovada, OrderStatusEntregue:
		return true
	}
	return false
}

// IsEditable reports whether line items can be removed.
func (s OrderStatus) IsEditable() bool {
	return s == OrderStatusRecebida || s == OrderStatusAguardandoAprovacao
}

// IsCompletion reports the status that stamps ClosedAt.
func (s OrderStatus) IsCompletion() bool {
	return s == OrderStatusFinalizada
}

func (s OrderStatus) String() string {
	return string(s)
}
