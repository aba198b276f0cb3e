package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gulfbridge/freight_ledger_app/internal/apperrors"
	portssvc "github.com/gulfbridge/freight_ledger_app/internal/core/ports/services"
	"github.com/gulfbridge/freight_ledger_app/internal/dto"
	"github.com/gulfbridge/freight_ledger_app/internal/middleware"
)

// jobHandler handles HTTP requests related to shipment jobs.
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

// registerJobRoutes registers routes related to jobs.
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade) {
	h := &jobHandler{jobService: jobService}

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.createJob)
		jobs.GET("", h.listJobs)
		jobs.GET("/:id", h.getJob)
		jobs.PUT("/:id", h.updateJob)
		jobs.PATCH("/:id/invoiced", h.setJobInvoiced)
		jobs.DELETE("/:id", h.deleteJob)
	}
}

// createJob godoc
// @Summary Create a new job
// @Description Creates a shipment job owned by a client, resolved by id or by inline name (find-or-create)
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to create job"
// @Security BearerAuth
// @Router /jobs [post]
func (h *jobHandler) createJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userName, ok := actorName(c)
	if !ok {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else {
			logger.Error("Failed to create job", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToJobResponse(job))
}

// listJobs godoc
// @Summary List jobs
// @Description Retrieves all jobs, newest first
// @Tags jobs
// @Produce  json
// @Success 200 {array} dto.JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list jobs"
// @Security BearerAuth
// @Router /jobs [get]
func (h *jobHandler) listJobs(c *gin.Context) {
	jobs, err := h.jobService.ListJobs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponses(jobs))
}

// getJob godoc
// @Summary Get a job by ID
// @Description Retrieves details for a specific job
// @Tags jobs
// @Produce  json
// @Param   id path int true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to retrieve job"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *jobHandler) getJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	job, err := h.jobService.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(job))
}

// updateJob godoc
// @Summary Update a job
// @Description Updates a job; saving with is_invoiced true re-runs the ledger synchronizer, whose outcome is reported in ledgerSync
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id path int true "Job ID"
// @Param   job body dto.UpdateJobRequest true "Fields to update"
// @Success 200 {object} dto.JobInvoicedResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to update job"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *jobHandler) updateJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJob", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userName, ok := actorName(c)
	if !ok {
		return
	}

	job, syncResult, err := h.jobService.UpdateJob(c.Request.Context(), jobID, req, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update job", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.JobInvoicedResponse{Job: dto.ToJobResponse(job), LedgerSync: syncResult})
}

// setJobInvoiced godoc
// @Summary Toggle a job's invoiced flag
// @Description Flips is_invoiced; setting it true runs the shadow-entry synchronizer, whose outcome is reported alongside the job
// @Tags jobs
// @Accept  json
// @Produce  json
// @Param   id path int true "Job ID"
// @Param   body body dto.SetJobInvoicedRequest true "Invoiced flag"
// @Success 200 {object} dto.JobInvoicedResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to update job"
// @Security BearerAuth
// @Router /jobs/{id}/invoiced [patch]
func (h *jobHandler) setJobInvoiced(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.SetJobInvoicedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetJobInvoiced", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userName, ok := actorName(c)
	if !ok {
		return
	}

	job, syncResult, err := h.jobService.SetJobInvoiced(c.Request.Context(), jobID, *req.IsInvoiced, userName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			logger.Error("Failed to set job invoiced", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.JobInvoicedResponse{Job: dto.ToJobResponse(job), LedgerSync: syncResult})
}

// deleteJob godoc
// @Summary Delete a job
// @Description Removes a job and its invoice items
// @Tags jobs
// @Produce  json
// @Param   id path int true "Job ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Job not found"
// @Failure 500 {object} map[string]string "Failed to delete job"
// @Security BearerAuth
// @Router /jobs/{id} [delete]
func (h *jobHandler) deleteJob(c *gin.Context) {
	jobID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userName, ok := actorName(c)
	if !ok {
		return
	}
	if err := h.jobService.DeleteJob(c.Request.Context(), jobID, userName); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
