package redisdb

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/storage/document"
)

// keyPrefix namespaces document keys in a shared Redis.
const keyPrefix = "gradebook:"

// DB keeps each document as a Redis string.
type DB struct {
	client *redis.Client
}

var _ document.Backend = (*DB)(nil)

// Open connects to the configured Redis and pings it.
func Open(ctx context.Context, conf core.RedisConfig) (*DB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "connecting to redis at %s", conf.Addr)
	}
	return New(client), nil
}

func New(client *redis.Client) *DB {
	return &DB{client: client}
}

func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := db.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, document.ErrNotFound
		}
		return nil, errors.Wrapf(err, "redis GET %s", key)
	}
	return data, nil
}

func (db *DB) Set(ctx context.Context, key string, data []byte) error {
	return errors.Wrapf(db.client.Set(ctx, keyPrefix+key, data, 0).Err(), "redis SET %s", key)
}

func (db *DB) Close() error {
	return db.client.Close()
}
