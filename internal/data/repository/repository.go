package repository

import (
	"time"

	"trek-insurance/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Session SessionRepository
	Order   OrderRepository
}

// NewRepository picks a backend per store: Redis for sessions and Postgres for orders when a
// connection is given, process memory otherwise.
func NewRepository(db database.PgxIface, rdb *database.RedisClient, sessionTTL time.Duration, log *zap.Logger) *Repository {
	repos := &Repository{
		Session: NewMemorySessionRepository(sessionTTL, log),
		Order:   NewMemoryOrderRepository(log),
	}

	if rdb != nil {
		repos.Session = NewRedisSessionRepository(rdb, sessionTTL, log)
	}
	if db != nil {
		repos.Order = NewOrderRepository(db, log)
	}

	return repos
}
