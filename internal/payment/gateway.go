// Package payment settles a confirmed booking against a payment provider.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"trek-insurance/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrDeclined is returned when the provider refuses the charge.
	ErrDeclined = errors.New("payment declined")
	// ErrTimeout is returned when settlement does not finish before the context ends.
	ErrTimeout = errors.New("payment processing timeout")
)

// DefaultDelay is how long the simulated provider takes to settle.
const DefaultDelay = 1500 * time.Millisecond

type Charge struct {
	SessionID uuid.UUID
	Amount    float64
	Method    entity.PaymentMethod
	Info      entity.PaymentInfo
}

type Receipt struct {
	TransactionID string               `json:"transaction_id"`
	Status        entity.PaymentStatus `json:"status"`
	Method        entity.PaymentMethod `json:"method"`
	Amount        float64              `json:"amount"`
	ProcessedAt   time.Time            `json:"processed_at"`
}

type Gateway interface {
	Submit(ctx context.Context, charge Charge) (*Receipt, error)
}

type simulatedGateway struct {
	delay time.Duration
	log   *zap.Logger
}

// NewSimulatedGateway returns a gateway that waits delay and then accepts every charge.
// No real provider is integrated.
func NewSimulatedGateway(delay time.Duration, log *zap.Logger) Gateway {
	if delay < 0 {
		delay = 0
	}
	return &simulatedGateway{
		delay: delay,
		log:   log.With(zap.String("gateway", "simulated")),
	}
}

func (g *simulatedGateway) Submit(ctx context.Context, charge Charge) (*Receipt, error) {
	if charge.Amount <= 0 || !charge.Method.IsValid() {
		return nil, fmt.Errorf("submit charge for session %s: %w", charge.SessionID, ErrDeclined)
	}

	g.log.Debug("Processing payment",
		zap.String("session_id", charge.SessionID.String()),
		zap.String("method", string(charge.Method)),
		zap.Float64("amount", charge.Amount))

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		g.log.Warn("Payment processing cancelled",
			zap.String("session_id", charge.SessionID.String()),
			zap.Error(ctx.Err()))
		return nil, fmt.Errorf("submit charge for session %s: %w", charge.SessionID, ErrTimeout)
	case <-timer.C:
	}

	receipt := &Receipt{
		TransactionID: uuid.NewString(),
		Status:        entity.PaymentStatusCompleted,
		Method:        charge.Method,
		Amount:        charge.Amount,
		ProcessedAt:   time.Now(),
	}

	g.log.Info("Payment processed",
		zap.String("session_id", charge.SessionID.String()),
		zap.String("transaction_id", receipt.TransactionID))

	return receipt, nil
}
