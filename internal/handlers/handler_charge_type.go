package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
)

// chargeTypeHandler handles HTTP requests for the charge type master.
type chargeTypeHandler struct {
	chargeTypeService portssvc.ChargeTypeSvcFacade
}

// registerChargeTypeRoutes registers routes related to charge types.
func registerChargeTypeRoutes(rg *gin.RouterGroup, chargeTypeService portssvc.ChargeTypeSvcFacade) {
	h := &chargeTypeHandler{chargeTypeService: chargeTypeService}

	chargeTypes := rg.Group("/charge-types")
	{
		chargeTypes.POST("", h.createChargeType)
		chargeTypes.GET("", h.listChargeTypes)
		chargeTypes.DELETE("/:id", h.deleteChargeType)
	}
}

// createChargeType godoc
// @Summary Create a charge type
// @Tags charge-types
// @Accept  json
// @Produce  json
// @Param   chargeType body dto.CreateChargeTypeRequest true "Charge type details"
// @Success 201 {object} dto.ChargeTypeResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Charge type already exists"
// @Failure 500 {object} map[string]string "Failed to create charge type"
// @Security BearerAuth
// @Router /charge-types [post]
func (h *chargeTypeHandler) createChargeType(c *gin.Context) {
	var req dto.CreateChargeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	ct, err := h.chargeTypeService.CreateChargeType(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create charge type"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToChargeTypeResponse(ct))
}

// listChargeTypes godoc
// @Summary List charge types
// @Tags charge-types
// @Produce  json
// @Success 200 {array} dto.ChargeTypeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list charge types"
// @Security BearerAuth
// @Router /charge-types [get]
func (h *chargeTypeHandler) listChargeTypes(c *gin.Context) {
	types, err := h.chargeTypeService.ListChargeTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list charge types"})
		return
	}
	out := make([]dto.ChargeTypeResponse, len(types))
	for i := range types {
		out[i] = dto.ToChargeTypeResponse(&types[i])
	}
	c.JSON(http.StatusOK, out)
}

// deleteChargeType godoc
// @Summary Delete a charge type
// @Description Fails with 409 while invoice items still reference the charge type
// @Tags charge-types
// @Produce  json
// @Param   id path int true "Charge type ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Charge type not found"
// @Failure 409 {object} map[string]string "Charge type is referenced by invoice items"
// @Failure 500 {object} map[string]string "Failed to delete charge type"
// @Security BearerAuth
// @Router /charge-types/{id} [delete]
func (h *chargeTypeHandler) deleteChargeType(c *gin.Context) {
	chargeTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.chargeTypeService.DeleteChargeType(c.Request.Context(), chargeTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Charge type not found"})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete charge type"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
