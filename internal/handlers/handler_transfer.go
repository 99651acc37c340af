package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/payment_recon_app/internal/core/ports/services"
	"github.com/SscSPs/payment_recon_app/internal/dto"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transferHandler handles HTTP requests related to treasury transfers.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// registerTransferRoutes registers routes related to treasury transfers.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.POST("", h.planTransfer)
		transfers.GET("", h.listTransfers)
		transfers.GET("/:transferID", h.getTransfer)
		transfers.POST("/:transferID/submit", h.submitTransfer)
		transfers.POST("/:transferID/confirm", h.confirmTransfer)
		transfers.POST("/:transferID/cancel", h.cancelTransfer)
	}
}

// planTransfer godoc
// @Summary Plan a treasury transfer
// @Description Creates a PLANNED transfer between registered accounts, optionally funded by an APPROVED or RECEIVED receipt
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   transfer body dto.PlanTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown account"
// @Failure 404 {object} dto.ErrorResponse "Funding receipt not found"
// @Failure 409 {object} dto.ErrorResponse "Funding receipt not cleared"
// @Failure 422 {object} dto.ErrorResponse "Transfer exceeds the receipt's unallocated amount"
// @Failure 503 {object} dto.ErrorResponse "Ledger store unavailable"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) planTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PlanTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "PlanTransfer request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("actor_id", actor.ID))
	logger.Info("Received request to plan transfer",
		slog.String("source_account", req.SourceAccount),
		slog.String("destination_account", req.DestinationAccount),
		slog.Int64("amount", req.Amount))

	transfer, err := h.transferService.Plan(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), req)
	if err != nil {
		respondError(c, err, "Failed to plan transfer")
		return
	}

	logger.Info("Transfer planned", slog.String("transfer_id", transfer.TransferID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// getTransfer godoc
// @Summary Get a treasury transfer
// @Tags transfers
// @Produce  json
// @Param   transferID path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Security BearerAuth
// @Router /transfers/{transferID} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	transfer, err := h.transferService.GetTransfer(c.Request.Context(), c.Param("transferID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// listTransfers godoc
// @Summary List treasury transfers
// @Tags transfers
// @Produce  json
// @Param   status query string false "Filter by status"
// @Param   paymentReceiptID query string false "Filter by funding receipt"
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTransfersResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
	var params dto.ListTransfersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "ListTransfers query")
		return
	}

	resp, err := h.transferService.ListTransfers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// submitTransfer godoc
// @Summary Submit a planned transfer to the bank
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   transferID path string true "Transfer ID"
// @Param   submission body dto.SubmitTransferRequest false "Bank reference"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Failure 409 {object} dto.ErrorResponse "Transfer is not PLANNED"
// @Security BearerAuth
// @Router /transfers/{transferID}/submit [post]
func (h *transferHandler) submitTransfer(c *gin.Context) {
	var req dto.SubmitTransferRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err, "SubmitTransfer request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.Submit(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), c.Param("transferID"), req)
	if err != nil {
		respondError(c, err, "Failed to submit transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// confirmTransfer godoc
// @Summary Confirm a submitted transfer
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   transferID path string true "Transfer ID"
// @Param   confirmation body dto.ConfirmTransferRequest false "Destination reference"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Failure 409 {object} dto.ErrorResponse "Transfer is not SUBMITTED"
// @Security BearerAuth
// @Router /transfers/{transferID}/confirm [post]
func (h *transferHandler) confirmTransfer(c *gin.Context) {
	var req dto.ConfirmTransferRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err, "ConfirmTransfer request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.Confirm(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), c.Param("transferID"), req)
	if err != nil {
		respondError(c, err, "Failed to confirm transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// cancelTransfer godoc
// @Summary Cancel a planned or submitted transfer
// @Description Canceling releases the transfer's allocation against its funding receipt
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client retry token"
// @Param   transferID path string true "Transfer ID"
// @Param   cancellation body dto.CancelTransferRequest false "Cancellation reason"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Failure 409 {object} dto.ErrorResponse "Transfer already confirmed or canceled"
// @Security BearerAuth
// @Router /transfers/{transferID}/cancel [post]
func (h *transferHandler) cancelTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelTransferRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondBindError(c, err, "CancelTransfer request")
		return
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	transfer, err := h.transferService.Cancel(c.Request.Context(), actor, middleware.GetIdempotencyKey(c), c.Param("transferID"), req)
	if err != nil {
		respondError(c, err, "Failed to cancel transfer")
		return
	}

	logger.Info("Transfer canceled", slog.String("transfer_id", transfer.TransferID), slog.String("actor_id", actor.ID))
	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}
