package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_recon_app/internal/core/ports/repositories"
	"github.com/SscSPs/payment_recon_app/internal/middleware"
	"github.com/google/uuid"
)

// BaseService provides common functionality for all services
type BaseService struct {
	UnitOfWork       portsrepo.UnitOfWork
	IdempotencyCache portsrepo.IdempotencyCache // optional
	Clock            func() time.Time
	IDGenerator      func() string
}

// ServiceOption is a functional option shared by all services
type ServiceOption func(*BaseService)

// WithIdempotencyCache puts a response cache in front of the store's idempotency records
func WithIdempotencyCache(cache portsrepo.IdempotencyCache) ServiceOption {
	return func(s *BaseService) {
		s.IdempotencyCache = cache
	}
}

// WithClock overrides the time source
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithIDGenerator overrides entity ID generation
func WithIDGenerator(gen func() string) ServiceOption {
	return func(s *BaseService) {
		s.IDGenerator = gen
	}
}

func newBaseService(uow portsrepo.UnitOfWork, options []ServiceOption) BaseService {
	base := BaseService{UnitOfWork: uow}
	for _, option := range options {
		option(&base)
	}
	return base
}

// now returns the current time truncated to the store's precision
func (s *BaseService) now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC().Truncate(time.Microsecond)
	}
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *BaseService) newID() string {
	if s.IDGenerator != nil {
		return s.IDGenerator()
	}
	return uuid.NewString()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a rejected operation with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// logFailure logs at warn for business rejections and at error for everything else.
func (s *BaseService) logFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if isBusinessRejection(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

// recordTransition appends the audit entry for a status change in the same transaction.
func (s *BaseService) recordTransition(ctx context.Context, tx portsrepo.TxRepositories, entityType domain.EntityType, entityID string, actor domain.Actor, from, to string, note *string, idempotencyKey string, at time.Time) error {
	entry := domain.AuditEntry{
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
		OccurredAt: at,
	}
	if idempotencyKey != "" {
		entry.IdempotencyKey = &idempotencyKey
	}
	_, err := tx.Audit().AppendAuditEntry(ctx, entry)
	return err
}
