package payment

import (
	"context"
	"testing"
	"time"

	"trek-insurance/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulatedGateway_Succeeds(t *testing.T) {
	gw := NewSimulatedGateway(10*time.Millisecond, zap.NewNop())
	charge := Charge{
		SessionID: uuid.New(),
		Amount:    567,
		Method:    entity.PaymentMethodEsewa,
		Info:      entity.PaymentInfo{CardNumber: "ESEWA_9841234567"},
	}

	start := time.Now()
	receipt, err := gw.Submit(context.Background(), charge)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Equal(t, entity.PaymentStatusCompleted, receipt.Status)
	assert.Equal(t, entity.PaymentMethodEsewa, receipt.Method)
	assert.Equal(t, 567.0, receipt.Amount)
	_, err = uuid.Parse(receipt.TransactionID)
	assert.NoError(t, err)
}

func TestSimulatedGateway_HonoursContext(t *testing.T) {
	gw := NewSimulatedGateway(time.Minute, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	receipt, err := gw.Submit(ctx, Charge{SessionID: uuid.New(), Amount: 89, Method: entity.PaymentMethodCard})

	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestSimulatedGateway_DeclinesEmptyAmount(t *testing.T) {
	gw := NewSimulatedGateway(0, zap.NewNop())

	_, err := gw.Submit(context.Background(), Charge{SessionID: uuid.New(), Method: entity.PaymentMethodCard})

	assert.ErrorIs(t, err, ErrDeclined)
}

func TestSimulatedGateway_DeclinesUnknownMethod(t *testing.T) {
	gw := NewSimulatedGateway(0, zap.NewNop())

	_, err := gw.Submit(context.Background(), Charge{SessionID: uuid.New(), Amount: 89, Method: "cash"})

	assert.ErrorIs(t, err, ErrDeclined)
}
