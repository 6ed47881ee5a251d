package budget

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/models"
	"github.com/shopspring/decimal"
)

// maxWriteAttempts bounds how often an operation that lost an optimistic
// write race is retried before the failure is surfaced to the caller.
const maxWriteAttempts = 3

// Defaults for new envelopes when the caller does not specify presentation
// tags.
const (
	DefaultColor = "turmeric"
	DefaultIcon  = "ShoppingBag"
)

// Service orchestrates the allocation engine, the envelope store and the
// transaction log. Every balance mutation goes through the service, no other
// collaborator writes balances.
type Service struct {
	storage Storage
}

func NewService(storage Storage) Service {
	return Service{storage: storage}
}

// RecordIncome splits an income amount across the owner's envelopes
// according to their percentages and appends a single income transaction for
// the full amount. Balance updates and the ledger append happen in one
// atomic unit.
//
// When idempotencyKey is set and a transaction with this key already exists,
// nothing is written and the recorded transaction is returned with the
// current snapshot.
func (s Service) RecordIncome(ctx context.Context, owner uuid.UUID, amount decimal.Decimal, description, idempotencyKey string) ([]models.Envelope, models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, models.Transaction{}, ErrInvalidAmount
	}

	var transaction models.Transaction

	err := s.withRetries(ctx, idempotencyKey, owner, &transaction, func(ctx context.Context) (models.Transaction, error) {
		var written models.Transaction

		err := s.storage.Atomic(ctx, func(storage Storage) error {
			envelopes, err := storage.ListEnvelopes(ctx, owner)
			if err != nil {
				return err
			}

			deltas, err := PlanIncomeDistribution(envelopes, amount)
			if err != nil {
				return err
			}

			for _, envelope := range envelopes {
				delta := deltas[envelope.ID]
				if delta.IsZero() {
					continue
				}

				if _, err := storage.ApplyBalanceDelta(ctx, envelope.ID, delta, envelope.Balance); err != nil {
					return err
				}
			}

			written = models.Transaction{
				OwnerID:        owner,
				Type:           models.TransactionTypeIncome,
				Amount:         amount,
				Description:    description,
				IdempotencyKey: keyPointer(idempotencyKey),
			}

			return storage.Append(ctx, &written)
		})

		return written, err
	})
	if err != nil {
		return nil, models.Transaction{}, err
	}

	envelopes, listErr := s.storage.ListEnvelopes(ctx, owner)
	if listErr != nil {
		return nil, models.Transaction{}, listErr
	}

	return envelopes, transaction, nil
}

// RecordExpense debits a single envelope and appends one expense transaction
// referencing it. The expense is rejected before any mutation when the
// envelope balance does not cover the amount.
func (s Service) RecordExpense(ctx context.Context, owner uuid.UUID, envelopeID uuid.UUID, amount decimal.Decimal, description, idempotencyKey string) (models.Envelope, models.Transaction, error) {
	if !amount.IsPositive() {
		return models.Envelope{}, models.Transaction{}, ErrInvalidAmount
	}

	var transaction models.Transaction

	err := s.withRetries(ctx, idempotencyKey, owner, &transaction, func(ctx context.Context) (models.Transaction, error) {
		var written models.Transaction

		err := s.storage.Atomic(ctx, func(storage Storage) error {
			envelope, err := storage.GetEnvelope(ctx, owner, envelopeID)
			if err != nil {
				return err
			}

			delta, err := PlanExpense(envelope, amount)
			if err != nil {
				return err
			}

			if _, err := storage.ApplyBalanceDelta(ctx, envelope.ID, delta, envelope.Balance); err != nil {
				return err
			}

			id := envelope.ID
			written = models.Transaction{
				OwnerID:        owner,
				Type:           models.TransactionTypeExpense,
				EnvelopeID:     &id,
				Amount:         amount,
				Description:    description,
				IdempotencyKey: keyPointer(idempotencyKey),
			}

			return storage.Append(ctx, &written)
		})

		return written, err
	})
	if err != nil {
		return models.Envelope{}, models.Transaction{}, err
	}

	envelope, getErr := s.storage.GetEnvelope(ctx, owner, envelopeID)
	if getErr != nil {
		return models.Envelope{}, models.Transaction{}, getErr
	}

	return envelope, transaction, nil
}

// RebalancePercentages persists a new percentage for every envelope in the
// set as one unit. Balances and history are not touched. Envelopes the
// caller does not mention keep their current percentage, and the resulting
// set must add up to exactly 100.
func (s Service) RebalancePercentages(ctx context.Context, owner uuid.UUID, percentages map[uuid.UUID]int) ([]models.Envelope, error) {
	var updated []models.Envelope

	err := s.storage.Atomic(ctx, func(storage Storage) error {
		envelopes, err := storage.ListEnvelopes(ctx, owner)
		if err != nil {
			return err
		}

		known := make(map[uuid.UUID]bool, len(envelopes))
		for i, envelope := range envelopes {
			known[envelope.ID] = true

			if percentage, ok := percentages[envelope.ID]; ok {
				envelopes[i].Percentage = percentage
			}
		}

		for id := range percentages {
			if !known[id] {
				return ErrEnvelopeNotFound
			}
		}

		if err := ValidatePercentageSet(envelopes); err != nil {
			return err
		}

		for _, envelope := range envelopes {
			if _, err := storage.UpdatePercentage(ctx, owner, envelope.ID, envelope.Percentage); err != nil {
				return err
			}
		}

		updated, err = storage.ListEnvelopes(ctx, owner)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CreateEnvelope adds a new envelope for the owner with percentage 0, an
// empty balance and the next free display order. The owner has to rebalance
// explicitly before the new envelope takes a share of income.
func (s Service) CreateEnvelope(ctx context.Context, owner uuid.UUID, name, color, icon string) (models.Envelope, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Envelope{}, ErrInvalidName
	}

	if color == "" {
		color = DefaultColor
	}

	if icon == "" {
		icon = DefaultIcon
	}

	envelope := models.Envelope{
		OwnerID: owner,
		Name:    name,
		Balance: decimal.Zero,
		Color:   color,
		Icon:    icon,
	}

	err := s.storage.Atomic(ctx, func(storage Storage) error {
		existing, err := storage.ListEnvelopes(ctx, owner)
		if err != nil {
			return err
		}

		for _, e := range existing {
			if e.DisplayOrder >= envelope.DisplayOrder {
				envelope.DisplayOrder = e.DisplayOrder + 1
			}
		}

		return storage.InsertEnvelope(ctx, &envelope)
	})
	if err != nil {
		return models.Envelope{}, err
	}

	return envelope, nil
}

// RenameEnvelope changes the display label of an envelope.
func (s Service) RenameEnvelope(ctx context.Context, owner uuid.UUID, id uuid.UUID, name string) (models.Envelope, error) {
	if strings.TrimSpace(name) == "" {
		return models.Envelope{}, ErrInvalidName
	}

	return s.storage.UpdateName(ctx, owner, id, strings.TrimSpace(name))
}

// UpdateEnvelopeAppearance changes the presentation tags of an envelope. The
// backend treats both values as opaque.
func (s Service) UpdateEnvelopeAppearance(ctx context.Context, owner uuid.UUID, id uuid.UUID, color, icon string) (models.Envelope, error) {
	return s.storage.UpdateAppearance(ctx, owner, id, color, icon)
}

// DeleteEnvelope removes an envelope. Its transactions are kept as history
// and the remaining percentages are not renormalized: the set may stay below
// 100 until the owner rebalances.
func (s Service) DeleteEnvelope(ctx context.Context, owner uuid.UUID, id uuid.UUID) error {
	return s.storage.DeleteEnvelope(ctx, owner, id)
}

// Envelopes returns the owner's envelopes ordered by display order.
func (s Service) Envelopes(ctx context.Context, owner uuid.UUID) ([]models.Envelope, error) {
	return s.storage.ListEnvelopes(ctx, owner)
}

// Envelope returns a single envelope of the owner.
func (s Service) Envelope(ctx context.Context, owner uuid.UUID, id uuid.UUID) (models.Envelope, error) {
	return s.storage.GetEnvelope(ctx, owner, id)
}

// Transactions returns the owner's ledger entries.
func (s Service) Transactions(ctx context.Context, owner uuid.UUID, filter TransactionFilter) ([]models.Transaction, error) {
	return s.storage.ListTransactions(ctx, owner, filter)
}

// Transaction returns a single ledger entry of the owner.
func (s Service) Transaction(ctx context.Context, owner uuid.UUID, id uuid.UUID) (models.Transaction, error) {
	return s.storage.GetTransaction(ctx, owner, id)
}

// withRetries runs a write operation, replaying it when it loses an
// optimistic write race. Before every attempt the idempotency key is checked
// so that a retry after a partial failure observation can never apply the
// same event twice.
func (s Service) withRetries(ctx context.Context, idempotencyKey string, owner uuid.UUID, result *models.Transaction, attempt func(context.Context) (models.Transaction, error)) error {
	for tries := 0; tries < maxWriteAttempts; tries++ {
		if idempotencyKey != "" {
			recorded, found, err := s.storage.FindByIdempotencyKey(ctx, owner, idempotencyKey)
			if err != nil {
				return err
			}

			if found {
				*result = recorded
				return nil
			}
		}

		written, err := attempt(ctx)
		if err == nil {
			*result = written
			return nil
		}

		if errors.Is(err, ErrConflict) {
			continue
		}

		return err
	}

	return fmt.Errorf("%w: too many concurrent modifications", ErrStoreUnavailable)
}

func keyPointer(key string) *string {
	if key == "" {
		return nil
	}

	return &key
}
