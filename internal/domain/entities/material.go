package entities

import (
	"strings"
	"time"
)

// Material is a stocked part or supply. Orders are charged the internal-use
// price; SalePrice is what the shop charges over the counter.
type Material struct {
	ID            string    `json:"id"`
	Name          string    `json:"name" validate:"required,min=3,max=100"`
	Description   string    `json:"description" validate:"max=500"`
	SalePrice     Money     `json:"-"`
	InternalPrice Money     `json:"-"`
	Quantity      int       `json:"quantity" validate:"gte=0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MaterialInput struct {
	Name               string
	Description        string
	SalePriceCents     int64
	InternalPriceCents int64
	Quantity           int
}

func NewMaterial(in MaterialInput, now time.Time) (Material, error) {
	return Material{CreatedAt: now}.Apply(in, now)
}

func (m Material) Apply(in MaterialInput, now time.Time) (Material, error) {
	sale, err := NewMoney(in.SalePriceCents)
	if err != nil {
		return m, err
	}
	internal, err := NewMoney(in.InternalPriceCents)
	if err != nil {
		return m, err
	}
	next := Material{
		ID:            m.ID,
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		SalePrice:     sale,
		InternalPrice: internal,
		Quantity:      in.Quantity,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     now,
	}
	if err := validateEntity(next); err != nil {
		return m, err
	}
	return next, nil
}
