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
	"github.com/gulfbridge/freight_ledger_app/internal/utils/dateparse"
)

// reportHandler handles HTTP requests for ledger reports.
type reportHandler struct {
	statementService portssvc.StatementSvcFacade
}

// registerReportRoutes registers the ledger report routes.
func registerReportRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvcFacade) {
	h := &reportHandler{statementService: statementService}

	reports := rg.Group("/reports")
	{
		reports.GET("/ledger-statement", h.getLedgerStatement)
		reports.GET("/account-statement", h.getAccountStatement)
		reports.GET("/reconciliation", h.getReconciliation)
	}
}

// clientIDQuery reads the required client_id query parameter, writing a 400 on
// absence or a non-numeric value.
func clientIDQuery(c *gin.Context) (int64, bool) {
	raw := c.Query("client_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id query parameter is required"})
		return 0, false
	}
	clientID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_id must be a numeric id"})
		return 0, false
	}
	return clientID, true
}

// getLedgerStatement godoc
// @Summary Client ledger statement
// @Description Builds the client's chronologically ordered running-balance statement; dates accept YYYY-MM-DD or DD/MM/YYYY
// @Tags reports
// @Produce  json
// @Param   client_id query int true "Client ID"
// @Param   start_date query string false "Window start (YYYY-MM-DD or DD/MM/YYYY)"
// @Param   end_date query string false "Window end (YYYY-MM-DD or DD/MM/YYYY)"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Missing client_id or malformed date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /reports/ledger-statement [get]
func (h *reportHandler) getLedgerStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := clientIDQuery(c)
	if !ok {
		return
	}
	from, err := dateparse.ParseOptional("start_date", c.Query("start_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := dateparse.ParseOptional("end_date", c.Query("end_date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.statementService.BuildStatement(c.Request.Context(), clientID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else {
			logger.Error("Failed to build ledger statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementResponse(report))
}

// getAccountStatement godoc
// @Summary Company-wide account statement
// @Description Aggregates cash movement across all transactions: received (CR+BR), paid (CP+BP), and their net
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.AccountStatementResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build account statement"
// @Security BearerAuth
// @Router /reports/account-statement [get]
func (h *reportHandler) getAccountStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.statementService.AccountStatement(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build account statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build account statement"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountStatementResponse(summary))
}

// getReconciliation godoc
// @Summary Invoice reconciliation report
// @Description Compares each invoiced job's recomputed item total against its shadow ledger entry for one client
// @Tags reports
// @Produce  json
// @Param   client_id query int true "Client ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Missing client_id"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to build reconciliation"
// @Security BearerAuth
// @Router /reports/reconciliation [get]
func (h *reportHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := clientIDQuery(c)
	if !ok {
		return
	}

	client, rows, err := h.statementService.BuildReconciliation(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		} else {
			logger.Error("Failed to build reconciliation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build reconciliation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(client, rows))
}
