package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/SscSPs/payment_recon_app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToDomainReceipt_NormalisesTimesToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	created := time.Date(2025, 5, 1, 15, 30, 0, 0, ist)
	received := created.Add(time.Hour)

	d := ToDomainReceipt(models.PaymentReceipt{
		ReceiptID:   "r1",
		Method:      "CASH",
		Amount:      100,
		Status:      "RECEIVED",
		ReceivedAt:  &received,
		AuditFields: models.AuditFields{CreatedAt: created, LastUpdatedAt: received, Version: 3},
	})

	assert.Equal(t, domain.MethodCash, d.Method)
	assert.Equal(t, domain.ReceiptReceived, d.Status)
	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.True(t, d.CreatedAt.Equal(created))
	assert.Equal(t, time.UTC, d.ReceivedAt.Location())
	assert.Equal(t, int64(3), d.Version)
}

func TestApprovalRequest_AttachmentsNeverNil(t *testing.T) {
	m := ToModelApprovalRequest(domain.ApprovalRequest{RequestID: "a1"})
	assert.NotNil(t, m.Attachments)

	d := ToDomainApprovalRequest(models.ApprovalRequest{RequestID: "a1"})
	assert.NotNil(t, d.Attachments)
	assert.Empty(t, d.Attachments)
}

func TestToDomainIdempotencyRecord(t *testing.T) {
	resourceID := "t-1"
	rec := ToDomainIdempotencyRecord(models.IdempotencyKey{Scope: "transfer.submit", Key: "k", ResourceID: &resourceID, Response: []byte(`{}`)})
	assert.Equal(t, "t-1", rec.ResourceID)
	assert.True(t, rec.Completed())

	pending := ToDomainIdempotencyRecord(models.IdempotencyKey{Scope: "transfer.submit", Key: "k"})
	assert.False(t, pending.Completed())
}
