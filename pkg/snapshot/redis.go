package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/acc-api/internal/models"
)

// Redis stores the snapshot under a single string key.
type Redis struct {
	client *redis.Client
	key    string
}

// RedisOptions configures the Redis-backed snapshot store.
type RedisOptions struct {
	Host     string
	Port     int
	Password string
	DB       int
	Key      string
}

// NewRedis connects and verifies the server before returning the store.
func NewRedis(opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	key := opts.Key
	if key == "" {
		key = "acc:ledger"
	}
	return &Redis{client: client, key: key}, nil
}

// Load implements Store.
func (r *Redis) Load(ctx context.Context) (*models.Ledger, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot key: %w", err)
	}
	return Decode(data)
}

// Save implements Store.
func (r *Redis) Save(ctx context.Context, ledger models.Ledger) error {
	data, err := Encode(ledger)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write snapshot key: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
