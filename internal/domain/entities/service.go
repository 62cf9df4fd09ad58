package entities

import (
	"strings"
	"time"
)

// Service is a billable labor item of the catalog.
type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"max=500"`
	Price       Money     `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceInput struct {
	Name        string
	Description string
	PriceCents  int64
}

func NewService(in ServiceInput, now time.Time) (Service, error) {
	return Service{CreatedAt: now}.Apply(in, now)
}

func (s Service) Apply(in ServiceInput, now time.Time) (Service, error) {
	price, err := NewMoney(in.PriceCents)
	if err != nil {
		return s, err
	}
	next := Service{
		ID:          s.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   now,
	}
	if err := validateEntity(next); err != nil {
		return s, err
	}
	return next, nil
}
