package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/models"
	"github.com/shopspring/decimal"
)

// EnvelopeStore is the durable mapping of envelope records per owner.
type EnvelopeStore interface {
	// ListEnvelopes returns the owner's envelopes ordered by display order.
	ListEnvelopes(ctx context.Context, owner uuid.UUID) ([]models.Envelope, error)

	// GetEnvelope returns a single envelope. It returns ErrEnvelopeNotFound
	// when the id does not exist among the owner's envelopes.
	GetEnvelope(ctx context.Context, owner uuid.UUID, id uuid.UUID) (models.Envelope, error)

	// ApplyBalanceDelta adds delta to the envelope balance if and only if
	// the current balance still equals expected. It returns ErrConflict
	// when the optimistic check fails.
	ApplyBalanceDelta(ctx context.Context, id uuid.UUID, delta, expected decimal.Decimal) (models.Envelope, error)

	InsertEnvelope(ctx context.Context, envelope *models.Envelope) error
	UpdateName(ctx context.Context, owner uuid.UUID, id uuid.UUID, name string) (models.Envelope, error)
	UpdateAppearance(ctx context.Context, owner uuid.UUID, id uuid.UUID, color, icon string) (models.Envelope, error)
	UpdatePercentage(ctx context.Context, owner uuid.UUID, id uuid.UUID, percentage int) (models.Envelope, error)
	DeleteEnvelope(ctx context.Context, owner uuid.UUID, id uuid.UUID) error
}

// TransactionLog is the append-only history of income and expense events.
// Records are immutable once written.
type TransactionLog interface {
	Append(ctx context.Context, transaction *models.Transaction) error

	// FindByIdempotencyKey returns the transaction a previous attempt with
	// the same key recorded, if there is one.
	FindByIdempotencyKey(ctx context.Context, owner uuid.UUID, key string) (models.Transaction, bool, error)

	ListTransactions(ctx context.Context, owner uuid.UUID, filter TransactionFilter) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, owner uuid.UUID, id uuid.UUID) (models.Transaction, error)
}

// TransactionFilter restricts the transactions returned by ListTransactions.
// Zero values mean "do not filter on this field".
type TransactionFilter struct {
	Type       models.TransactionType
	EnvelopeID uuid.UUID
}

// Storage bundles the collaborators of the budget service.
//
// Atomic runs fn inside a single storage transaction: either every write fn
// performs is persisted, or none of them is.
type Storage interface {
	EnvelopeStore
	TransactionLog

	Atomic(ctx context.Context, fn func(Storage) error) error
}
