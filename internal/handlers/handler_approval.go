package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// approvalHandler handles HTTP requests related to approval requests.
type approvalHandler struct {
	approvalService portssvc.ApprovalSvcFacade
}

func newApprovalHandler(as portssvc.ApprovalSvcFacade) *approvalHandler {
	return &approvalHandler{
		approvalService: as,
	}
}

// registerApprovalRoutes registers the approval queue routes.
func registerApprovalRoutes(rg *gin.RouterGroup, approvalService portssvc.ApprovalSvcFacade) {
	h := newApprovalHandler(approvalService)

	approvals := rg.Group("/approval-requests")
	{
		approvals.GET("", h.listApprovalRequests)
		approvals.GET("/:requestID", h.getApprovalRequest)
		approvals.POST("/:requestID/decision", h.decide)
		approvals.POST("/:requestID/attachments", h.attachEvidence)
	}
}

// listApprovalRequests godoc
// @Summary List approval requests
// @Description Lists the approval queue newest first, optionally filtered by status, assigned role or receipt
// @Tags approvals
// @Produce  json
// @Param   status query string false "PENDING, APPROVED or REJECTED"
// @Param   assignedRole query string false "Assigned role"
// @Param   paymentReceiptID query string false "Receipt ID"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListApprovalRequestsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /approval-requests [get]
func (h *approvalHandler) listApprovalRequests(c *gin.Context) {
	var params dto.ListApprovalRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListApprovalRequests query")
		return
	}

	resp, err := h.approvalService.ListApprovalRequests(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list approval requests")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getApprovalRequest godoc
// @Summary Get an approval request
// @Tags approvals
// @Produce  json
// @Param   requestID path string true "Approval request ID"
// @Success 200 {object} dto.ApprovalRequestResponse
// @Failure 404 {object} dto.ErrorResponse "Approval request not found"
// @Security BearerAuth
// @Router /approval-requests/{requestID} [get]
func (h *approvalHandler) getApprovalRequest(c *gin.Context) {
	request, err := h.approvalService.GetApprovalRequest(c.Request.Context(), c.Param("requestID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve approval request")
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalRequestResponse(request))
}

// decide godoc
// @Summary Approve or reject a pending request
// @Description Records the decision and moves the receipt to APPROVED or REJECTED in the same transaction.
// @Description Only the assigned role or a configured override role may decide.
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   requestID path string true "Approval request ID"
// @Param   decision body dto.DecideApprovalRequest true "Decision"
// @Success 200 {object} dto.ApprovalRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Caller's role may not decide this request"
// @Failure 404 {object} dto.ErrorResponse "Approval request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already decided"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /approval-requests/{requestID}/decision [post]
func (h *approvalHandler) decide(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.DecideApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "DecideApproval request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("request_id", requestID), slog.String("actor_id", actor.ID))
	logger.Info("Received approval decision", slog.String("outcome", string(req.Outcome)))

	request, err := h.approvalService.Decide(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), requestID, req)
	if err != nil {
		respondError(c, err, "Failed to record approval decision")
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalRequestResponse(request))
}

// attachEvidence godoc
// @Summary Attach evidence to a pending request
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   requestID path string true "Approval request ID"
// @Param   attachment body dto.AttachEvidenceRequest true "Evidence reference"
// @Success 200 {object} dto.ApprovalRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Approval request not found"
// @Failure 409 {object} dto.ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /approval-requests/{requestID}/attachments [post]
func (h *approvalHandler) attachEvidence(c *gin.Context) {
	var req dto.AttachEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "AttachEvidence request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	request, err := h.approvalService.AttachEvidence(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), c.Param("requestID"), req)
	if err != nil {
		respondError(c, err, "Failed to attach evidence")
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalRequestResponse(request))
}
