package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campus-info-api/internal/service"
	appErrors "github.com/campusdesk/campus-info-api/pkg/errors"
	"github.com/campusdesk/campus-info-api/pkg/response"
)

// EntityHandler exposes the uniform admin CRUD routes. Each managed
// table gets its own route set bound to the same handler logic.
type EntityHandler struct {
	entities *service.EntityService
}

// NewEntityHandler constructs a new EntityHandler.
func NewEntityHandler(entities *service.EntityService) *EntityHandler {
	return &EntityHandler{entities: entities}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid id"))
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List rows of a managed table
// @Tags Entities
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/{table} [get]
func (h *EntityHandler) List(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.entities.List(c.Request.Context(), table)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, rows)
	}
}

// Get godoc
// @Summary Fetch one row of a managed table
// @Tags Entities
// @Produce json
// @Param id path int true "Row id"
// @Success 200 {object} response.Envelope
// @Router /api/{table}/{id} [get]
func (h *EntityHandler) Get(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		row, err := h.entities.Get(c.Request.Context(), table, id)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, row)
	}
}

// Create godoc
// @Summary Insert a row into a managed table
// @Tags Entities
// @Accept json
// @Produce json
// @Param payload body object true "Column values"
// @Success 201 {object} response.Envelope
// @Router /api/{table} [post]
func (h *EntityHandler) Create(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
		id, err := h.entities.Create(c.Request.Context(), table, fields)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Created(c, gin.H{"id": id})
	}
}

// Update godoc
// @Summary Update a row of a managed table
// @Tags Entities
// @Accept json
// @Produce json
// @Param id path int true "Row id"
// @Param payload body object true "Column values"
// @Success 200 {object} response.Envelope
// @Router /api/{table}/{id} [put]
func (h *EntityHandler) Update(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
			return
		}
		if err := h.entities.Update(c.Request.Context(), table, id, fields); err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, gin.H{"id": id})
	}
}

// Delete godoc
// @Summary Delete a row of a managed table
// @Tags Entities
// @Produce json
// @Param id path int true "Row id"
// @Success 204
// @Router /api/{table}/{id} [delete]
func (h *EntityHandler) Delete(table string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := h.entities.Delete(c.Request.Context(), table, id); err != nil {
			response.Error(c, err)
			return
		}
		response.NoContent(c)
	}
}
