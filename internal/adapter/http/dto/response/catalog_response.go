package response

import (
	"time"

	"os_service_api/internal/domain/entities"
)

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Document  string    `json:"document"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type VehicleResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Plate      string    `json:"plate"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Year       int       `json:"year"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MaterialResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	SalePriceCents     int64     `json:"sale_price_cents"`
	InternalPriceCents int64     `json:"internal_price_cents"`
	Quantity           int       `json:"quantity"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email, Document: c.Document, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		CustomerID: v.CustomerID,
		Plate:      v.Plate,
		Brand:      v.Brand,
		Model:      v.Model,
		Year:       v.Year,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		PriceCents:  s.Price.Cents(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Description:        m.Description,
		SalePriceCents:     m.SalePrice.Cents(),
		InternalPriceCents: m.InternalPrice.Cents(),
		Quantity:           m.Quantity,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// mapSlice converts every element with fn.
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

func FromCustomers(items []entities.Customer) []CustomerResponse { return mapSlice(items, FromCustomer) }
func FromVehicles(items []entities.Vehicle) []VehicleResponse    { return mapSlice(items, FromVehicle) }
func FromServices(items []entities.Service) []ServiceResponse    { return mapSlice(items, FromService) }
func FromMaterials(items []entities.Material) []MaterialResponse { return mapSlice(items, FromMaterial) }
