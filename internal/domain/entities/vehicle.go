package entities

import (
	"strings"
	"time"
)

type Vehicle struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id" validate:"required"`
	Plate      string    `json:"plate" validate:"required,alphanum,len=7"`
	Brand      string    `json:"brand" validate:"required,max=50"`
	Model      string    `json:"model" validate:"required,max=50"`
	Year       int       `json:"year" validate:"gte=1900,lte=2100"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type VehicleInput struct {
	CustomerID string
	Plate      string
	Brand      string
	Model      string
	Year       int
}

func NewVehicle(in VehicleInput, now time.Time) (Vehicle, error) {
	return Vehicle{CreatedAt: now}.Apply(in, now)
}

func (v Vehicle) Apply(in VehicleInput, now time.Time) (Vehicle, error) {
	plate := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(in.Plate), "-", ""))
	next := Vehicle{
		ID:         v.ID,
		CustomerID: strings.TrimSpace(in.CustomerID),
		Plate:      plate,
		Brand:      strings.TrimSpace(in.Brand),
		Model:      strings.TrimSpace(in.Model),
		Year:       in.Year,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  now,
	}
	if err := validateEntity(next); err != nil {
		return v, err
	}
	return next, nil
}

// BelongsTo reports whether the vehicle is owned by customerID.
func (v Vehicle) BelongsTo(customerID string) bool {
	return v.CustomerID == strings.TrimSpace(customerID)
}
