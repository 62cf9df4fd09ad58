package entities

import "fmt"

// OrderAction is a mutation requested on an order.
type OrderAction string

const (
	ActionAttachService  OrderAction = "attach-service"
	ActionDetachService  OrderAction = "detach-service"
	ActionAttachMaterial OrderAction = "attach-material"
	ActionDetachMaterial OrderAction = "detach-material"
	ActionTransition     OrderAction = "transition"
)

// TransitionMode selects how status transitions are validated.
type TransitionMode int

const (
	// TransitionPermissive accepts any known status from any status.
	TransitionPermissive TransitionMode = iota
	// TransitionStrict only follows the business flow graph.
	TransitionStrict
)

var strictTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusRecebida:            {OrderStatusEmDiagnostico, OrderStatusReprovada, OrderStatusCancelada},
	OrderStatusEmDiagnostico:       {OrderStatusAguardandoAprovacao, OrderStatusReprovada, OrderStatusCancelada},
	OrderStatusAguardandoAprovacao: {OrderStatusAprovada, OrderStatusReprovada, OrderStatusCancelada},
	OrderStatusAprovada:            {OrderStatusEmExecucao, OrderStatusReprovada, OrderStatusCancelada},
	OrderStatusEmExecucao:          {OrderStatusFinalizada, OrderStatusReprovada, OrderStatusCancelada},
	OrderStatusFinalizada:          {OrderStatusEntregue},
}

// OrderPolicy is the lifecycle decision table. It holds no state besides its
// mode and is safe to share.
type OrderPolicy struct {
	Mode TransitionMode
}

func NewOrderPolicy(strict bool) OrderPolicy {
	if strict {
		return OrderPolicy{Mode: TransitionStrict}
	}
	return OrderPolicy{Mode: TransitionPermissive}
}

// Decide answers whether action is allowed from current and which status the
// order ends in. target is only read for ActionTransition.
func (p OrderPolicy) Decide(current OrderStatus, action OrderAction, target OrderStatus) (OrderStatus, error) {
	switch action {
	case ActionAttachService, ActionAttachMaterial:
		if err := p.CanAttach(current); err != nil {
			return current, err
		}
		return current, nil
	case ActionDetachService, ActionDetachMaterial:
		if err := p.CanDetach(current); err != nil {
			return current, err
		}
		return current, nil
	case ActionTransition:
		return p.Transition(current, target)
	default:
		return current, fmt.Errorf("%w: unknown order action %q", ErrInvalidArgument, action)
	}
}

func (p OrderPolicy) CanAttach(current OrderStatus) error {
	if current.IsClosed() {
		return fmt.Errorf("%w (status %s)", ErrOrderClosedForItems, current)
	}
	return nil
}

func (p OrderPolicy) CanDetach(current OrderStatus) error {
	if !current.IsEditable() {
		return fmt.Errorf("%w (status %s)", ErrOrderNotEditable, current)
	}
	return nil
}

// Transition validates requested against the known status set and, in strict
// mode, against the flow graph.
func (p OrderPolicy) Transition(current, requested OrderStatus) (OrderStatus, error) {
	if !requested.IsKnown() {
		return current, fmt.Errorf("%w: %q", ErrUnknownOrderStatus, requested)
	}
	if p.Mode != TransitionStrict {
		return requested, nil
	}
	for _, next := range strictTransitions[current] {
		if next == requested {
			return requested, nil
		}
	}
	return current, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionDenied, current, requested)
}

// AllowedTransitions lists the statuses reachable from current.
func (p OrderPolicy) AllowedTransitions(current OrderStatus) []OrderStatus {
	if p.Mode != TransitionStrict {
		out := make([]OrderStatus, len(OrderStatuses))
		copy(out, OrderStatuses)
		return out
	}
	next := strictTransitions[current]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}
