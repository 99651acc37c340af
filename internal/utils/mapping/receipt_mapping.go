package mapping

import (
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/models"
)

// ToModelReceipt converts a domain PaymentReceipt to a model PaymentReceipt
func ToModelReceipt(d domain.PaymentReceipt) models.PaymentReceipt {
	return models.PaymentReceipt{
		ReceiptID:   d.ReceiptID,
		Method:      string(d.Method),
		Amount:      d.Amount,
		Status:      string(d.Status),
		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		Description: d.Description,
		Notes:       d.Notes,
		ExternalRef: d.ExternalRef,
		ReceivedAt:  d.ReceivedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model PaymentReceipt to a domain PaymentReceipt
func ToDomainReceipt(m models.PaymentReceipt) domain.PaymentReceipt {
	return domain.PaymentReceipt{
		ReceiptID:   m.ReceiptID,
		Method:      domain.PaymentMethod(m.Method),
		Amount:      m.Amount,
		Status:      domain.ReceiptStatus(m.Status),
		ClientName:  m.ClientName,
		ClientEmail: m.ClientEmail,
		Description: m.Description,
		Notes:       m.Notes,
		ExternalRef: m.ExternalRef,
		ReceivedAt:  utcPtr(m.ReceivedAt),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
