package handlers

import (
	"net/http"
	"strings"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// entityTypeAliases lets audit URLs use the collection names of the REST API.
var entityTypeAliases = map[string]domain.EntityType{
	"receipts":          domain.EntityReceipt,
	"approval-requests": domain.EntityApproval,
	"transfers":         domain.EntityTransfer,
}

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: rs,
	}
}

// registerReconciliationRoutes registers the dashboard and audit routes.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	recon := rg.Group("/reconciliation")
	{
		recon.GET("/totals", h.getTotals)
		recon.GET("/by-method", h.getByMethod)
	}
	rg.GET("/audit/:entityType/:entityID", h.getAuditTrail)
}

// getTotals godoc
// @Summary Reconciliation totals for a period
// @Description Sums received, pending and transferred-out amounts over [from, to). All figures come from one consistent snapshot.
// @Tags reconciliation
// @Produce  json
// @Param   from query string true "Period start (RFC3339 or YYYY-MM-DD, inclusive)"
// @Param   to query string true "Period end (RFC3339 or YYYY-MM-DD, exclusive)"
// @Success 200 {object} dto.ReconciliationTotalsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /reconciliation/totals [get]
func (h *reconciliationHandler) getTotals(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	totals, err := h.reconciliationService.Totals(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to compute reconciliation totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationTotalsResponse(totals))
}

// getByMethod godoc
// @Summary Reconciliation totals by method
// @Tags reconciliation
// @Produce  json
// @Param   from query string true "Period start (RFC3339 or YYYY-MM-DD, inclusive)"
// @Param   to query string true "Period end (RFC3339 or YYYY-MM-DD, exclusive)"
// @Success 200 {object} dto.MethodBreakdownResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /reconciliation/by-method [get]
func (h *reconciliationHandler) getByMethod(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	breakdown, err := h.reconciliationService.ByMethod(c.Request.Context(), period)
	if err != nil {
		respondError(c, err, "Failed to compute reconciliation breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.ToMethodBreakdownResponse(breakdown))
}

// getAuditTrail godoc
// @Summary Audit trail of an entity
// @Description Lists an entity's transitions in sequence order. entityType is receipts, approval-requests or transfers.
// @Tags reconciliation
// @Produce  json
// @Param   entityType path string true "Entity type"
// @Param   entityID path string true "Entity ID"
// @Success 200 {object} dto.AuditTrailResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown entity type"
// @Failure 404 {object} dto.ErrorResponse "No audit trail"
// @Security BearerAuth
// @Router /audit/{entityType}/{entityID} [get]
func (h *reconciliationHandler) getAuditTrail(c *gin.Context) {
	raw := c.Param("entityType")
	entityType, ok := entityTypeAliases[strings.ToLower(raw)]
	if !ok {
		entityType = domain.EntityType(strings.ToUpper(raw))
	}
	entityID := c.Param("entityID")

	entries, err := h.reconciliationService.AuditTrail(c.Request.Context(), entityType, entityID)
	if err != nil {
		respondError(c, err, "Failed to retrieve audit trail")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuditTrailResponse(entityType, entityID, entries))
}

func bindPeriod(c *gin.Context) (domain.Period, bool) {
	var params dto.ReconciliationPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "reconciliation period")
		return domain.Period{}, false
	}
	period, err := parsePeriod(params)
	if err != nil {
		respondError(c, err, "Invalid reconciliation period")
		return domain.Period{}, false
	}
	return period, true
}
