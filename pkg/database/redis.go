package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trek-insurance/pkg/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrKeyNotFound is returned by GetJSON for a missing or expired key.
var ErrKeyNotFound = errors.New("key not found")

type RedisClient struct {
	*redis.Client
}

// InitRedis connects to Redis and pings it
func InitRedis(config utils.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr(),
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return &RedisClient{client}, nil
}

func (rc *RedisClient) Close() error {
	return rc.Client.Close()
}

// SetJSON stores value as JSON under key, expiring after expiration (0 keeps it forever)
func (rc *RedisClient) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return rc.Set(ctx, key, data, expiration).Err()
}

func (rc *RedisClient) GetJSON(ctx context.Context, key string, dest any) error {
	data, err := rc.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("get %s: %w", key, ErrKeyNotFound)
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}

	return json.Unmarshal(data, dest)
}

// Delete removes key and reports whether it existed
func (rc *RedisClient) Delete(ctx context.Context, key string) (bool, error) {
	n, err := rc.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", key, err)
	}
	return n > 0, nil
}

// SessionKey is the key a wizard session is stored under
func SessionKey(id uuid.UUID) string {
	return fmt.Sprintf("wizard_session:%s", id)
}
