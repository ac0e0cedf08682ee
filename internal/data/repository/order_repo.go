package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"trek-insurance/internal/data/entity"
	"trek-insurance/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderRepository stores settled policy orders. Finders return (nil, nil) when nothing matches.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByPolicyNumber(ctx context.Context, policyNumber string) (*entity.Order, error)
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.Order, error)
}

// ==================== POSTGRES ====================

const orderSchema = `
	CREATE TABLE IF NOT EXISTS orders (
		id                   UUID PRIMARY KEY,
		policy_number        TEXT NOT NULL UNIQUE,
		session_id           UUID NOT NULL,
		package_id           TEXT NOT NULL,
		package_name         TEXT NOT NULL,
		number_of_travellers INT NOT NULL,
		lead_traveller       TEXT NOT NULL,
		total_price          NUMERIC(12, 2) NOT NULL,
		payment_method       TEXT NOT NULL,
		card_last4           TEXT NOT NULL DEFAULT '',
		card_fingerprint     TEXT NOT NULL DEFAULT '',
		transaction_id       TEXT NOT NULL,
		payment_status       TEXT NOT NULL,
		status               TEXT NOT NULL,
		created_at           TIMESTAMPTZ NOT NULL,
		updated_at           TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS orders_session_id_idx ON orders (session_id);
`

const orderColumns = `id, policy_number, session_id, package_id, package_name, number_of_travellers,
	lead_traveller, total_price, payment_method, card_last4, card_fingerprint, transaction_id,
	payment_status, status, created_at, updated_at`

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// EnsureOrderSchema creates the orders table when it does not exist yet.
func EnsureOrderSchema(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, orderSchema); err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}
	return nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.PolicyNumber,
		order.SessionID,
		order.PackageID,
		order.PackageName,
		order.NumberOfTravellers,
		order.LeadTraveller,
		order.TotalPrice,
		order.PaymentMethod,
		order.CardLast4,
		order.CardFingerprint,
		order.TransactionID,
		order.PaymentStatus,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("policy_number", order.PolicyNumber),
			zap.String("session_id", order.SessionID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.PolicyNumber, err)
	}

	return nil
}

func (r *orderRepository) FindByPolicyNumber(ctx context.Context, policyNumber string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE policy_number = $1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, policyNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by policy number",
			zap.Error(err),
			zap.String("policy_number", policyNumber),
		)
		return nil, fmt.Errorf("find order by policy number %s: %w", policyNumber, err)
	}

	return order, nil
}

// FindBySessionID returns the latest order placed from a session.
func (r *orderRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE session_id = $1 ORDER BY created_at DESC LIMIT 1`

	order, err := scanOrder(r.db.QueryRow(ctx, query, sessionID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by session",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("find order by session %s: %w", sessionID, err)
	}

	return order, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.PolicyNumber,
		&order.SessionID,
		&order.PackageID,
		&order.PackageName,
		&order.NumberOfTravellers,
		&order.LeadTraveller,
		&order.TotalPrice,
		&order.PaymentMethod,
		&order.CardLast4,
		&order.CardFingerprint,
		&order.TransactionID,
		&order.PaymentStatus,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ==================== MEMORY ====================

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []entity.Order
	log    *zap.Logger
}

// NewMemoryOrderRepository keeps orders in process memory, for running without Postgres.
func NewMemoryOrderRepository(log *zap.Logger) OrderRepository {
	return &memoryOrderRepository{
		log: log.With(zap.String("repository", "order"), zap.String("store", "memory")),
	}
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == order.ID || o.PolicyNumber == order.PolicyNumber {
			return fmt.Errorf("create order %s: duplicate", order.PolicyNumber)
		}
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memoryOrderRepository) FindByPolicyNumber(ctx context.Context, policyNumber string) (*entity.Order, error) {
	return r.find(func(o entity.Order) bool { return o.PolicyNumber == policyNumber }), nil
}

func (r *memoryOrderRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) (*entity.Order, error) {
	return r.find(func(o entity.Order) bool { return o.SessionID == sessionID }), nil
}

// find returns the most recently created match.
func (r *memoryOrderRepository) find(match func(entity.Order) bool) *entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.orders) - 1; i >= 0; i-- {
		if match(r.orders[i]) {
			order := r.orders[i]
			return &order
		}
	}
	return nil
}
