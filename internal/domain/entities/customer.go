package entities

import (
	"strings"
	"time"
)

// Customer owns vehicles and orders.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=3,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Document  string    `json:"document" validate:"required,numeric,min=11,max=14"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerInput struct {
	Name     string
	Email    string
	Document string
}

func NewCustomer(in CustomerInput, now time.Time) (Customer, error) {
	return Customer{CreatedAt: now}.Apply(in, now)
}

// Apply builds a new customer value from in, keeping identity and creation
// time. The receiver is not modified.
func (c Customer) Apply(in CustomerInput, now time.Time) (Customer, error) {
	next := Customer{
		ID:        c.ID,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Document:  onlyDigits(in.Document),
		CreatedAt: c.CreatedAt,
		UpdatedAt: now,
	}
	if err := validateEntity(next); err != nil {
		return c, err
	}
	return next, nil
}
