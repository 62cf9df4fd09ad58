package handlers

import (
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// CreateVehicle godoc
// @Summary      Register a vehicle for a customer
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        vehicle  body      request.VehicleRequest  true  "Vehicle"
// @Success      201      {object}  response.VehicleResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(created))
}

// ListVehicles godoc
// @Summary      List vehicles
// @Tags         vehicles
// @Produce      json
// @Success      200  {array}  response.VehicleResponse
// @Router       /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(items))
}

// ListCustomerVehicles godoc
// @Summary      List the vehicles of a customer
// @Tags         customers
// @Produce      json
// @Param        id   path     string  true  "Customer ID"
// @Success      200  {array}  response.VehicleResponse
// @Router       /customers/{id}/vehicles [get]
func (h *VehicleHandler) ListCustomerVehicles(c *gin.Context) {
	items, err := h.usecase.ListByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(items))
}

// GetVehicle godoc
// @Summary      Get a vehicle
// @Tags         vehicles
// @Produce      json
// @Param        id   path      string  true  "Vehicle ID"
// @Success      200  {object}  response.VehicleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(item))
}

// UpdateVehicle godoc
// @Summary      Replace a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Vehicle ID"
// @Param        vehicle  body      request.VehicleRequest  true  "Vehicle"
// @Success      200      {object}  response.VehicleResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(updated))
}

// DeleteVehicle godoc
// @Summary      Delete a vehicle
// @Tags         vehicles
// @Param        id   path  string  true  "Vehicle ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
