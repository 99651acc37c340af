package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receiptHandler handles HTTP requests related to payment receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

// newReceiptHandler creates a new receiptHandler.
func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{
		receiptService: rs,
	}
}

// registerReceiptRoutes registers routes related to payment receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.recordReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receiptID", h.getReceipt)
		receipts.POST("/:receiptID/approval-requests", h.requestApproval)
		receipts.POST("/:receiptID/receive", h.markReceived)
		receipts.POST("/:receiptID/refund", h.refundReceipt)
	}
}

// recordReceipt godoc
// @Summary Record a manual payment receipt
// @Description Records an incoming payment in PENDING status. Amounts are in minor currency units.
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   receipt body dto.RecordReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Idempotency key reused with a different request"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) recordReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "RecordReceipt request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("actor_id", actor.ID))
	logger.Info("Received request to record receipt", slog.String("method", string(req.Method)), slog.Int64("amount", req.Amount))

	receipt, err := h.receiptService.RecordManualReceipt(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), req)
	if err != nil {
		respondError(c, err, "Failed to record receipt")
		return
	}

	logger.Info("Receipt recorded successfully", slog.String("receipt_id", receipt.ReceiptID))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}

// getReceipt godoc
// @Summary Get a payment receipt
// @Description Retrieves a single receipt by ID
// @Tags receipts
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} dto.ErrorResponse "Receipt not found"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /receipts/{receiptID} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	receiptID := c.Param("receiptID")

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), receiptID)
	if err != nil {
		respondError(c, err, "Failed to retrieve receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary List payment receipts
// @Description Lists receipts newest first with cursor pagination
// @Tags receipts
// @Produce  json
// @Param   status query string false "Filter by status"
// @Param   method query string false "Filter by payment method"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListReceipts query")
		return
	}

	resp, err := h.receiptService.ListReceipts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list receipts")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// requestApproval godoc
// @Summary Request compliance approval for a receipt
// @Description Opens an approval request and moves the receipt to PENDING_APPROVAL
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   receiptID path string true "Receipt ID"
// @Param   request body dto.RequestApprovalRequest false "Routing options"
// @Success 201 {object} dto.ApprovalRequestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Receipt not found"
// @Failure 409 {object} dto.ErrorResponse "Pending request exists or receipt not in PENDING"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /receipts/{receiptID}/approval-requests [post]
func (h *receiptHandler) requestApproval(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	var req dto.RequestApprovalRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err, "RequestApproval request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("receipt_id", receiptID), slog.String("actor_id", actor.ID))
	logger.Info("Received request to open approval request")

	request, err := h.receiptService.RequestApproval(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), receiptID, req)
	if err != nil {
		respondError(c, err, "Failed to request approval")
		return
	}

	logger.Info("Approval requested", slog.String("request_id", request.RequestID))
	c.JSON(http.StatusCreated, dto.ToApprovalRequestResponse(request))
}

// markReceived godoc
// @Summary Mark a receipt as received
// @Description Confirms funds are in hand for a PENDING receipt of an auto-clearing method or an APPROVED receipt
// @Tags receipts
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   receiptID path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} dto.ErrorResponse "Receipt not found"
// @Failure 409 {object} dto.ErrorResponse "Receipt status does not allow this transition"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /receipts/{receiptID}/receive [post]
func (h *receiptHandler) markReceived(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.MarkReceived(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), receiptID)
	if err != nil {
		respondError(c, err, "Failed to mark receipt received")
		return
	}

	logger.Info("Receipt marked received", slog.String("receipt_id", receiptID), slog.String("actor_id", actor.ID))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// refundReceipt godoc
// @Summary Refund a receipt
// @Description Moves an APPROVED or RECEIVED receipt to REFUNDED
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   receiptID path string true "Receipt ID"
// @Param   refund body dto.RefundReceiptRequest false "Refund reason"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} dto.ErrorResponse "Receipt not found"
// @Failure 409 {object} dto.ErrorResponse "Receipt status does not allow a refund"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /receipts/{receiptID}/refund [post]
func (h *receiptHandler) refundReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	var req dto.RefundReceiptRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err, "RefundReceipt request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	receipt, err := h.receiptService.Refund(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), receiptID, req)
	if err != nil {
		respondError(c, err, "Failed to refund receipt")
		return
	}

	logger.Info("Receipt refunded", slog.String("receipt_id", receiptID), slog.String("actor_id", actor.ID))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}
