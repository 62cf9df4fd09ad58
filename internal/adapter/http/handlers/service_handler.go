package handlers

import (
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceHandler manages the catalog of billable services. Price changes only
// affect orders that attach the service afterwards.
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService godoc
// @Summary      Create a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        service  body      request.ServiceRequest  true  "Service"
// @Success      201      {object}  response.ServiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromService(created))
}

// ListServices godoc
// @Summary      List services
// @Tags         services
// @Produce      json
// @Success      200  {array}  response.ServiceResponse
// @Router       /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServices(items))
}

// GetService godoc
// @Summary      Get a service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  response.ServiceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(item))
}

// UpdateService godoc
// @Summary      Replace a service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Service ID"
// @Param        service  body      request.ServiceRequest  true  "Service"
// @Success      200      {object}  response.ServiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(updated))
}

// DeleteService godoc
// @Summary      Delete a service
// @Tags         services
// @Param        id   path  string  true  "Service ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
