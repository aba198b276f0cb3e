package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
	"github.com/gulfbridge/freight_ledger_app/internal/middleware"
)

// invoiceItemHandler handles HTTP requests related to invoice items.
type invoiceItemHandler struct {
	itemService portssvc.InvoiceItemSvcFacade
}

// registerInvoiceItemRoutes registers routes related to invoice items.
func registerInvoiceItemRoutes(rg *gin.RouterGroup, itemService portssvc.InvoiceItemSvcFacade) {
	h := &invoiceItemHandler{itemService: itemService}

	items := rg.Group("/invoice-items")
	{
		items.POST("", h.createInvoiceItem)
		items.GET("", h.listInvoiceItems)
		items.GET("/:id", h.getInvoiceItem)
		items.PUT("/:id", h.updateInvoiceItem)
		items.DELETE("/:id", h.deleteInvoiceItem)
	}
}

// createInvoiceItem godoc
// @Summary Create an invoice item
// @Description Adds a billable line to a job; total is recomputed as amount + vat, and the job's shadow ledger entry is resynced when already invoiced
// @Tags invoice-items
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateInvoiceItemRequest true "Invoice item details"
// @Success 201 {object} dto.InvoiceItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job or charge type not found"
// @Failure 500 {object} map[string]string "Failed to create invoice item"
// @Security BearerAuth
// @Router /invoice-items [post]
func (h *invoiceItemHandler) createInvoiceItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoiceItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.CreateInvoiceItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create invoice item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create invoice item"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceItemResponse(item))
}

// listInvoiceItems godoc
// @Summary List invoice items for a job
// @Description Retrieves the items on one job; without a job_id filter the result is empty
// @Tags invoice-items
// @Produce  json
// @Param   job_id query int false "Job ID"
// @Success 200 {array} dto.InvoiceItemResponse
// @Failure 400 {object} map[string]string "job_id not numeric"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to list invoice items"
// @Security BearerAuth
// @Router /invoice-items [get]
func (h *invoiceItemHandler) listInvoiceItems(c *gin.Context) {
	raw := c.Query("job_id")
	if raw == "" {
		c.JSON(http.StatusOK, []dto.InvoiceItemResponse{})
		return
	}
	jobID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id must be a numeric id"})
		return
	}

	items, err := h.itemService.ListInvoiceItemsByJobID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoice items"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceItemResponses(items))
}

// getInvoiceItem godoc
// @Summary Get an invoice item by ID
// @Tags invoice-items
// @Produce  json
// @Param   id path int true "Invoice item ID"
// @Success 200 {object} dto.InvoiceItemResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice item not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice item"
// @Security BearerAuth
// @Router /invoice-items/{id} [get]
func (h *invoiceItemHandler) getInvoiceItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	item, err := h.itemService.GetInvoiceItemByID(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice item"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceItemResponse(item))
}

// updateInvoiceItem godoc
// @Summary Update an invoice item
// @Description Updates an item; total is recomputed and the owning job's shadow ledger entry resynced when the job is invoiced
// @Tags invoice-items
// @Accept  json
// @Produce  json
// @Param   id path int true "Invoice item ID"
// @Param   item body dto.UpdateInvoiceItemRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceItemResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice item not found"
// @Failure 500 {object} map[string]string "Failed to update invoice item"
// @Security BearerAuth
// @Router /invoice-items/{id} [put]
func (h *invoiceItemHandler) updateInvoiceItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoiceItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	item, err := h.itemService.UpdateInvoiceItem(c.Request.Context(), itemID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update invoice item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update invoice item"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceItemResponse(item))
}

// deleteInvoiceItem godoc
// @Summary Delete an invoice item
// @Description Removes an item and resyncs the owning job's shadow ledger entry when the job is invoiced
// @Tags invoice-items
// @Produce  json
// @Param   id path int true "Invoice item ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice item not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice item"
// @Security BearerAuth
// @Router /invoice-items/{id} [delete]
func (h *invoiceItemHandler) deleteInvoiceItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.itemService.DeleteInvoiceItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice item"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
