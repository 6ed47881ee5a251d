// Package storage implements the budget.Storage contract on top of gorm.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/budget"
	"github.com/potli-money/backend/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) Storage {
	return Storage{db: db}
}

// Atomic runs fn inside a single database transaction.
func (s Storage) Atomic(ctx context.Context, fn func(budget.Storage) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Storage{db: tx})
	})
}

func (s Storage) ListEnvelopes(ctx context.Context, owner uuid.UUID) ([]models.Envelope, error) {
	var envelopes []models.Envelope

	err := s.db.WithContext(ctx).
		Where(&models.Envelope{OwnerID: owner}).
		Order("display_order ASC").
		Find(&envelopes).Error
	if err != nil {
		return nil, unavailable(err)
	}

	return envelopes, nil
}

func (s Storage) GetEnvelope(ctx context.Context, owner uuid.UUID, id uuid.UUID) (models.Envelope, error) {
	var envelope models.Envelope

	err := s.db.WithContext(ctx).
		Where(&models.Envelope{OwnerID: owner}).
		First(&envelope, id).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Envelope{}, budget.ErrEnvelopeNotFound
		}

		return models.Envelope{}, unavailable(err)
	}

	return envelope, nil
}

// ApplyBalanceDelta adds delta to the balance with an optimistic check: the
// write only happens when the balance still has the value the caller read.
// The conditional update and the check are a single statement, there is no
// window for another writer in between.
func (s Storage) ApplyBalanceDelta(ctx context.Context, id uuid.UUID, delta, expected decimal.Decimal) (models.Envelope, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Envelope{}).
		Where("id = ? AND balance = ?", id, expected).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return models.Envelope{}, unavailable(res.Error)
	}

	if res.RowsAffected == 0 {
		// Distinguish a lost race from a missing envelope
		var envelope models.Envelope
		err := s.db.WithContext(ctx).First(&envelope, id).Error
		if err != nil {
			if errors.Is(err, models.ErrResourceNotFound) {
				return models.Envelope{}, budget.ErrEnvelopeNotFound
			}

			return models.Envelope{}, unavailable(err)
		}

		return models.Envelope{}, budget.ErrConflict
	}

	var envelope models.Envelope
	if err := s.db.WithContext(ctx).First(&envelope, id).Error; err != nil {
		return models.Envelope{}, unavailable(err)
	}

	return envelope, nil
}

func (s Storage) InsertEnvelope(ctx context.Context, envelope *models.Envelope) error {
	if err := s.db.WithContext(ctx).Create(envelope).Error; err != nil {
		return unavailable(err)
	}

	return nil
}

func (s Storage) UpdateName(ctx context.Context, owner uuid.UUID, id uuid.UUID, name string) (models.Envelope, error) {
	return s.saveEnvelope(ctx, owner, id, func(envelope *models.Envelope) {
		envelope.Name = name
	})
}

func (s Storage) UpdateAppearance(ctx context.Context, owner uuid.UUID, id uuid.UUID, color, icon string) (models.Envelope, error) {
	return s.saveEnvelope(ctx, owner, id, func(envelope *models.Envelope) {
		if color != "" {
			envelope.Color = color
		}

		if icon != "" {
			envelope.Icon = icon
		}
	})
}

func (s Storage) UpdatePercentage(ctx context.Context, owner uuid.UUID, id uuid.UUID, percentage int) (models.Envelope, error) {
	return s.saveEnvelope(ctx, owner, id, func(envelope *models.Envelope) {
		envelope.Percentage = percentage
	})
}

func (s Storage) saveEnvelope(ctx context.Context, owner uuid.UUID, id uuid.UUID, mutate func(*models.Envelope)) (models.Envelope, error) {
	envelope, err := s.GetEnvelope(ctx, owner, id)
	if err != nil {
		return models.Envelope{}, err
	}

	mutate(&envelope)

	if err := s.db.WithContext(ctx).Save(&envelope).Error; err != nil {
		return models.Envelope{}, unavailable(err)
	}

	return envelope, nil
}

func (s Storage) DeleteEnvelope(ctx context.Context, owner uuid.UUID, id uuid.UUID) error {
	envelope, err := s.GetEnvelope(ctx, owner, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(&envelope).Error; err != nil {
		return unavailable(err)
	}

	return nil
}

func (s Storage) Append(ctx context.Context, transaction *models.Transaction) error {
	err := s.db.WithContext(ctx).Create(transaction).Error
	if err != nil {
		// A key collision means a concurrent attempt with the same key
		// committed first. The retry loop of the service re-reads the key
		// and resolves this as a no-op.
		if errors.Is(err, models.ErrIdempotencyKeyNotUnique) {
			return budget.ErrConflict
		}

		return unavailable(err)
	}

	return nil
}

func (s Storage) FindByIdempotencyKey(ctx context.Context, owner uuid.UUID, key string) (models.Transaction, bool, error) {
	var transaction models.Transaction

	err := s.db.WithContext(ctx).
		Where("owner_id = ? AND idempotency_key = ?", owner, key).
		First(&transaction).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Transaction{}, false, nil
		}

		return models.Transaction{}, false, unavailable(err)
	}

	return transaction, true, nil
}

func (s Storage) ListTransactions(ctx context.Context, owner uuid.UUID, filter budget.TransactionFilter) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).
		Where(&models.Transaction{OwnerID: owner}).
		Order("created_at DESC")

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	if filter.EnvelopeID != uuid.Nil {
		q = q.Where("envelope_id = ?", filter.EnvelopeID)
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, unavailable(err)
	}

	return transactions, nil
}

func (s Storage) GetTransaction(ctx context.Context, owner uuid.UUID, id uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction

	err := s.db.WithContext(ctx).
		Where(&models.Transaction{OwnerID: owner}).
		First(&transaction, id).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return models.Transaction{}, err
		}

		return models.Transaction{}, unavailable(err)
	}

	return transaction, nil
}

// unavailable classifies storage failures. Validation errors raised by the
// model hooks pass through unchanged, everything the database itself failed
// on is reported as unavailable storage.
func unavailable(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrGeneral):
		return fmt.Errorf("%w: %v", budget.ErrStoreUnavailable, err)
	case errors.Is(err, models.ErrEnvelopeNameEmpty),
		errors.Is(err, models.ErrEnvelopePercentageInvalid),
		errors.Is(err, models.ErrEnvelopeBalanceNegative),
		errors.Is(err, models.ErrTransactionAmountNotPositive),
		errors.Is(err, models.ErrTransactionTypeInvalid),
		errors.Is(err, models.ErrTransactionEnvelopeMissing),
		errors.Is(err, models.ErrTransactionEnvelopeSet),
		errors.Is(err, models.ErrResourceNotFound):
		return err
	default:
		return fmt.Errorf("%w: %v", budget.ErrStoreUnavailable, err)
	}
}
