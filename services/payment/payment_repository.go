package paymentservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PaymentRepository interface {
	RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	InsertPayment(ctx context.Context, tx *sqlx.Tx, payment Payment) (uuid.UUID, error)
	UpgradeSubscription(ctx context.Context, tx *sqlx.Tx, hrEmail string, packageLimit int, tier string) (int64, error)
	GetPaymentsByHR(ctx context.Context, hrEmail string) ([]Payment, error)
}

type PostgresPaymentRepository struct {
	DB *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &PostgresPaymentRepository{DB: db}
}

func (r *PostgresPaymentRepository) RunInTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	err = fn(tx)
	return err
}

func (r *PostgresPaymentRepository) InsertPayment(ctx context.Context, tx *sqlx.Tx, payment Payment) (uuid.UUID, error) {
	var paymentID uuid.UUID
	err := tx.GetContext(ctx, &paymentID, `
		INSERT INTO payments (hr_email, package_limit, amount_cents, tier, transaction_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id
	`, payment.HREmail, payment.PackageLimit, payment.AmountCents, payment.Tier, payment.TransactionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	return paymentID, nil
}

func (r *PostgresPaymentRepository) UpgradeSubscription(ctx context.Context, tx *sqlx.Tx, hrEmail string, packageLimit int, tier string) (int64, error) {
	result, err := tx.ExecContext(ctx, `
		UPDATE users SET package_limit = $1, subscription = $2
		WHERE email = $3 AND role = 'hr'
	`, packageLimit, tier, hrEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to upgrade subscription: %w", err)
	}
	modified, _ := result.RowsAffected()
	return modified, nil
}

func (r *PostgresPaymentRepository) GetPaymentsByHR(ctx context.Context, hrEmail string) ([]Payment, error) {
	payments := make([]Payment, 0)
	err := r.DB.SelectContext(ctx, &payments, `
		SELECT id, hr_email, package_limit, amount_cents, tier, transaction_id,
		       to_char(paid_at, 'YYYY-MM-DD') AS paid_at
		FROM payments
		WHERE hr_email = $1
		ORDER BY paid_at DESC, id
	`, hrEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	return payments, nil
}
