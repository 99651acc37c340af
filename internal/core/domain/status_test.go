package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestReceiptStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from, to domain.ReceiptStatus
		allowed  bool
	}{
		{domain.ReceiptPending, domain.ReceiptPendingApproval, true},
		{domain.ReceiptPending, domain.ReceiptReceived, true},
		{domain.ReceiptPending, domain.ReceiptApproved, false},
		{domain.ReceiptPendingApproval, domain.ReceiptApproved, true},
		{domain.ReceiptPendingApproval, domain.ReceiptRejected, true},
		{domain.ReceiptPendingApproval, domain.ReceiptPending, false},
		{domain.ReceiptApproved, domain.ReceiptReceived, true},
		{domain.ReceiptApproved, domain.ReceiptRefunded, true},
		{domain.ReceiptReceived, domain.ReceiptRefunded, true},
		{domain.ReceiptReceived, domain.ReceiptApproved, false},
		{domain.ReceiptRejected, domain.ReceiptPending, false},
		{domain.ReceiptRefunded, domain.ReceiptReceived, false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	assert.True(t, domain.ReceiptRejected.IsTerminal())
	assert.True(t, domain.ReceiptRefunded.IsTerminal())
	assert.False(t, domain.ReceiptApproved.IsTerminal())
}

func TestTransferStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, domain.TransferPlanned.CanTransitionTo(domain.TransferSubmitted))
	assert.True(t, domain.TransferPlanned.CanTransitionTo(domain.TransferCanceled))
	assert.False(t, domain.TransferPlanned.CanTransitionTo(domain.TransferConfirmed))
	assert.True(t, domain.TransferSubmitted.CanTransitionTo(domain.TransferConfirmed))
	assert.True(t, domain.TransferSubmitted.CanTransitionTo(domain.TransferCanceled))
	assert.False(t, domain.TransferSubmitted.CanTransitionTo(domain.TransferPlanned))
	assert.False(t, domain.TransferConfirmed.CanTransitionTo(domain.TransferCanceled))
	assert.True(t, domain.TransferConfirmed.IsTerminal())
	assert.True(t, domain.TransferCanceled.IsTerminal())
	assert.False(t, domain.TransferCanceled.CountsTowardAllocation())
	assert.True(t, domain.TransferConfirmed.CountsTowardAllocation())
}

func TestApprovalStatus_ReceiptStatus(t *testing.T) {
	status, ok := domain.ApprovalApproved.ReceiptStatus()
	assert.True(t, ok)
	assert.Equal(t, domain.ReceiptApproved, status)

	status, ok = domain.ApprovalRejected.ReceiptStatus()
	assert.True(t, ok)
	assert.Equal(t, domain.ReceiptRejected, status)

	_, ok = domain.ApprovalPending.ReceiptStatus()
	assert.False(t, ok)
}

func TestApprovalRequest_CanBeDecidedBy(t *testing.T) {
	request := domain.ApprovalRequest{AssignedRole: domain.RoleLegal}
	overrides := []domain.Role{domain.RoleAdmin}

	assert.True(t, request.CanBeDecidedBy(domain.RoleLegal, overrides))
	assert.True(t, request.CanBeDecidedBy(domain.RoleAdmin, overrides))
	assert.False(t, request.CanBeDecidedBy(domain.RoleFinance, overrides))
	assert.False(t, request.CanBeDecidedBy(domain.RoleAdmin, nil))
}

func TestMethodPolicy(t *testing.T) {
	policy := domain.DefaultMethodPolicy()
	assert.True(t, policy.RequiresCompliance(domain.MethodCash))
	assert.False(t, policy.RequiresCompliance(domain.MethodCard))
	assert.True(t, policy.AutoClears(domain.MethodCard))
	assert.False(t, policy.AutoClears(domain.MethodCash))
}

func TestRoleParsing(t *testing.T) {
	assert.Equal(t, domain.RoleLegal, domain.ParseRole(" legal "))
	assert.True(t, domain.ParseRole("finance").IsValid())
	assert.False(t, domain.ParseRole("intern").IsValid())
}

func TestPeriodContains(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	period := domain.Period{From: from, To: from.AddDate(0, 1, 0)}

	assert.True(t, period.Contains(from))
	assert.True(t, period.Contains(from.Add(time.Hour)))
	assert.False(t, period.Contains(period.To))
	assert.False(t, period.Contains(from.Add(-time.Nanosecond)))
}

func TestReportingTime(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	receipt := domain.PaymentReceipt{AuditFields: domain.NewAuditFields("ops", created)}
	assert.Equal(t, created, receipt.ReportingTime())

	received := created.Add(48 * time.Hour)
	receipt.ReceivedAt = &received
	assert.Equal(t, received, receipt.ReportingTime())
}

func TestPaymentReceipt_CanFund(t *testing.T) {
	receipt := domain.PaymentReceipt{Amount: 10000}

	testCases := []struct {
		name      string
		allocated int64
		amount    int64
		want      bool
	}{
		{"fits", 7000, 3000, true},
		{"one over", 7000, 3001, false},
		{"nothing allocated", 0, 10000, true},
		{"near max int64", 7000, math.MaxInt64 - 1000, false},
		{"max int64", 0, math.MaxInt64, false},
		{"zero amount", 0, 0, false},
		{"already over allocated", 10001, 1, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, receipt.CanFund(tc.allocated, tc.amount))
		})
	}
}
