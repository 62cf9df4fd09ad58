package request

import "os_service_api/internal/domain/entities"

type CustomerRequest struct {
	Name     string `json:"name" binding:"required" example:"Maria Silva"`
	Email    string `json:"email" binding:"required" example:"maria@example.com"`
	Document string `json:"document" binding:"required" example:"123.456.789-09"`
}

func (r CustomerRequest) ToInput() entities.CustomerInput {
	return entities.CustomerInput{Name: r.Name, Email: r.Email, Document: r.Document}
}

type VehicleRequest struct {
	CustomerID string `json:"customer_id" binding:"required" example:"3f1c2b9a-6a54-4f0e-9a61-8c5a2f0e7d11"`
	Plate      string `json:"plate" binding:"required" example:"ABC1D23"`
	Brand      string `json:"brand" binding:"required" example:"Fiat"`
	Model      string `json:"model" binding:"required" example:"Uno"`
	Year       int    `json:"year" binding:"required" example:"2012"`
}

func (r VehicleRequest) ToInput() entities.VehicleInput {
	return entities.VehicleInput{CustomerID: r.CustomerID, Plate: r.Plate, Brand: r.Brand, Model: r.Model, Year: r.Year}
}

// ServiceRequest carries prices in cents.
type ServiceRequest struct {
	Name        string `json:"name" binding:"required" example:"Alinhamento"`
	Description string `json:"description" example:"Alinhamento e balanceamento"`
	PriceCents  int64  `json:"price_cents" binding:"gte=0" example:"15000"`
}

func (r ServiceRequest) ToInput() entities.ServiceInput {
	return entities.ServiceInput{Name: r.Name, Description: r.Description, PriceCents: r.PriceCents}
}

// MaterialRequest carries prices in cents.
type MaterialRequest struct {
	Name               string `json:"name" binding:"required" example:"Óleo 5W30"`
	Description        string `json:"description" example:"Frasco 1L"`
	SalePriceCents     int64  `json:"sale_price_cents" binding:"gte=0" example:"8000"`
	InternalPriceCents int64  `json:"internal_price_cents" binding:"gte=0" example:"6000"`
	Quantity           int    `json:"quantity" binding:"gte=0" example:"12"`
}

func (r MaterialRequest) ToInput() entities.MaterialInput {
	return entities.MaterialInput{
		Name:               r.Name,
		Description:        r.Description,
		SalePriceCents:     r.SalePriceCents,
		InternalPriceCents: r.InternalPriceCents,
		Quantity:           r.Quantity,
	}
}
