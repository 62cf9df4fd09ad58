package handlers

import (
	"net/http"

	request "os_service_api/internal/adapter/http/dto/request"
	response "os_service_api/internal/adapter/http/dto/response"
	"os_service_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MaterialHandler manages stocked materials. Orders are charged the internal
// price captured when the material is attached.
type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// CreateMaterial godoc
// @Summary      Create a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        material  body      request.MaterialRequest  true  "Material"
// @Success      201      {object}  response.MaterialResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMaterial(created))
}

// ListMaterials godoc
// @Summary      List materials
// @Tags         materials
// @Produce      json
// @Success      200  {array}  response.MaterialResponse
// @Router       /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(items))
}

// GetMaterial godoc
// @Summary      Get a material
// @Tags         materials
// @Produce      json
// @Param        id   path      string  true  "Material ID"
// @Success      200  {object}  response.MaterialResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [get]
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(item))
}

// UpdateMaterial godoc
// @Summary      Replace a material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Material ID"
// @Param        material  body      request.MaterialRequest  true  "Material"
// @Success      200      {object}  response.MaterialResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /materials/{id} [put]
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(updated))
}

// DeleteMaterial godoc
// @Summary      Delete a material
// @Tags         materials
// @Param        id   path  string  true  "Material ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
