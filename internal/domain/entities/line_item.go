package entities

import "strings"

// LineItemSnapshot is the price-frozen copy of a service or material taken when
// it is attached to an order. Fields are unexported so a snapshot cannot be
// changed after construction; later catalog price changes never reach it.
type LineItemSnapshot struct {
	itemID string
	name   string
	amount Money
}

func NewLineItemSnapshot(itemID, name string, amount Money) (LineItemSnapshot, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return LineItemSnapshot{}, ErrBlankItemID
	}
	return LineItemSnapshot{itemID: itemID, name: strings.TrimSpace(name), amount: amount}, nil
}

// SnapshotService freezes a catalog service at its current price.
func SnapshotService(s Service) (LineItemSnapshot, error) {
	return NewLineItemSnapshot(s.ID, s.Name, s.Price)
}

// SnapshotMaterial freezes a material at its internal-use price, not its sale price.
func SnapshotMaterial(m Material) (LineItemSnapshot, error) {
	return NewLineItemSnapshot(m.ID, m.Name, m.InternalPrice)
}

func (s LineItemSnapshot) ItemID() string { return s.itemID }
func (s LineItemSnapshot) Name() string   { return s.name }
func (s LineItemSnapshot) Amount() Money  { return s.amount }

func sumSnapshots(items []LineItemSnapshot) (Money, error) {
	amounts := make([]Money, 0, len(items))
	for _, it := range items {
		amounts = append(amounts, it.amount)
	}
	return SumMoney(amounts...)
}
