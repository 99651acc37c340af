package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
)

// Idempotency scopes, one per mutating operation.
const (
	ScopeRecordReceipt   = "receipt.record"
	ScopeRequestApproval = "receipt.request_approval"
	ScopeMarkReceived    = "receipt.mark_received"
	ScopeRefund          = "receipt.refund"
	ScopeDecide          = "approval.decide"
	ScopeAttachEvidence  = "approval.attach_evidence"
	ScopePlanTransfer    = "transfer.plan"
	ScopeSubmitTransfer  = "transfer.submit"
	ScopeConfirmTransfer = "transfer.confirm"
	ScopeCancelTransfer  = "transfer.cancel"
)

// idempotentCall identifies one client attempt of a mutating operation.
type idempotentCall struct {
	scope   string
	key     string
	target  string // ID of the addressed entity, empty for creates
	request any
}

func (c idempotentCall) fingerprint() (string, error) {
	body, err := json.Marshal(c.request)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint request: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(c.scope))
	h.Write([]byte{0})
	h.Write([]byte(c.target))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// runIdempotent executes fn inside a store transaction guarded by the call's
// idempotency key. The key is claimed in the same transaction as fn's writes:
// a completed key replays its stored response without calling fn, and a key
// first used for a different request fails with apperrors.ErrConflict.
func runIdempotent[T any](ctx context.Context, s *BaseService, call idempotentCall, fn func(ctx context.Context, tx portsrepo.TxRepositories) (T, string, error)) (T, error) {
	var zero T
	if call.key == "" {
		return zero, fmt.Errorf("%w: idempotency key is required", apperrors.ErrValidation)
	}
	fp, err := call.fingerprint()
	if err != nil {
		return zero, err
	}
	logAttrs := []any{slog.String("scope", call.scope), slog.String("idempotency_key", call.key)}

	if s.IdempotencyCache != nil {
		cached, err := s.IdempotencyCache.GetResponse(ctx, call.scope, call.key)
		if err != nil {
			s.LogWarn(ctx, err, "Idempotency cache lookup failed, falling back to store", logAttrs...)
		} else if cached.Completed() {
			result, err := replay[T](cached, fp)
			if err == nil {
				s.LogInfo(ctx, "Replayed idempotent response from cache", logAttrs...)
			}
			return result, err
		}
	}

	var (
		result   T
		record   domain.IdempotencyRecord
		replayed bool
	)
	err = s.UnitOfWork.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TxRepositories) error {
		claimed, err := tx.Idempotency().ClaimIdempotencyKey(ctx, domain.IdempotencyRecord{
			Scope:       call.scope,
			Key:         call.key,
			Fingerprint: fp,
			CreatedAt:   s.now(),
		})
		if err != nil {
			return err
		}
		if claimed.Completed() {
			result, err = replay[T](claimed, fp)
			replayed = err == nil
			return err
		}
		if claimed.Fingerprint != fp {
			return fmt.Errorf("%w: idempotency key %q was used with a different request", apperrors.ErrConflict, call.key)
		}

		out, resourceID, err := fn(ctx, tx)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to encode idempotent response: %w", err)
		}
		if err := tx.Idempotency().CompleteIdempotencyKey(ctx, call.scope, call.key, resourceID, payload); err != nil {
			return err
		}
		result = out
		record = *claimed
		record.ResourceID = resourceID
		record.Response = payload
		return nil
	})
	if err != nil {
		return zero, err
	}

	if replayed {
		s.LogInfo(ctx, "Replayed idempotent response", logAttrs...)
		return result, nil
	}
	if s.IdempotencyCache != nil {
		if err := s.IdempotencyCache.StoreResponse(ctx, record); err != nil {
			s.LogWarn(ctx, err, "Failed to cache idempotent response", logAttrs...)
		}
	}
	return result, nil
}

func replay[T any](record *domain.IdempotencyRecord, fingerprint string) (T, error) {
	var result T
	if record.Fingerprint != fingerprint {
		return result, fmt.Errorf("%w: idempotency key %q was used with a different request", apperrors.ErrConflict, record.Key)
	}
	if err := json.Unmarshal(record.Response, &result); err != nil {
		return result, fmt.Errorf("failed to decode stored idempotent response: %w", err)
	}
	return result, nil
}
