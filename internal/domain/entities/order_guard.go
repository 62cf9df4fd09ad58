package entities

// CheckCreationGuard rejects a new order when the customer still has orders
// that have not reached FINALIZADA. existing is the repository read for the
// customer; it is filtered again here so the rule does not depend on the query.
func CheckCreationGuard(customerID string, existing []Order) error {
	unfinished := 0
	for _, o := range existing {
		if o.CustomerID != customerID {
			continue
		}
		if o.Status != OrderStatusFinalizada {
			unfinished++
		}
	}
	if unfinished > 0 {
		return &UnfinishedOrdersError{CustomerID: customerID, Count: unfinished}
	}
	return nil
}
