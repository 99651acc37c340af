package mapping

import (
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/models"
)

// ToModelTransfer converts a domain TreasuryTransfer to a model TreasuryTransfer
func ToModelTransfer(d domain.TreasuryTransfer) models.TreasuryTransfer {
	return models.TreasuryTransfer{
		TransferID:         d.TransferID,
		SourceAccount:      d.SourceAccount,
		DestinationAccount: d.DestinationAccount,
		Method:             string(d.Method),
		Amount:             d.Amount,
		Status:             string(d.Status),
		PaymentReceiptID:   d.PaymentReceiptID,
		PlannedAt:          d.PlannedAt,
		SubmittedAt:        d.SubmittedAt,
		ConfirmedAt:        d.ConfirmedAt,
		CanceledAt:         d.CanceledAt,
		SourceBankRef:      d.SourceBankRef,
		DestinationRef:     d.DestinationRef,
		Notes:              d.Notes,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransfer converts a model TreasuryTransfer to a domain TreasuryTransfer
func ToDomainTransfer(m models.TreasuryTransfer) domain.TreasuryTransfer {
	return domain.TreasuryTransfer{
		TransferID:         m.TransferID,
		SourceAccount:      m.SourceAccount,
		DestinationAccount: m.DestinationAccount,
		Method:             domain.TransferMethod(m.Method),
		Amount:             m.Amount,
		Status:             domain.TransferStatus(m.Status),
		PaymentReceiptID:   m.PaymentReceiptID,
		PlannedAt:          m.PlannedAt.UTC(),
		SubmittedAt:        utcPtr(m.SubmittedAt),
		ConfirmedAt:        utcPtr(m.ConfirmedAt),
		CanceledAt:         utcPtr(m.CanceledAt),
		SourceBankRef:      m.SourceBankRef,
		DestinationRef:     m.DestinationRef,
		Notes:              m.Notes,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
