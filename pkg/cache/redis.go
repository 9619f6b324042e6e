package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
	config *RedisConfig
}

type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewRedisCache(ctx context.Context, config *RedisConfig) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password:     config.Password,
		DB:           config.DB,
		PoolSize:     config.PoolSize,
		MinIdleConns: config.MinIdleConns,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	return newRedisCache(ctx, rdb, config)
}

// NewRedisCacheFromClient wraps an existing client, e.g. one dialled by a test.
func NewRedisCacheFromClient(ctx context.Context, rdb *redis.Client) (*RedisCache, error) {
	return newRedisCache(ctx, rdb, &RedisConfig{})
}

func newRedisCache(ctx context.Context, rdb *redis.Client, config *RedisConfig) (*RedisCache, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &RedisCache{
		client: rdb,
		config: config,
	}, nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// List operations

// PushJSON encodes value as JSON and pushes it on the head of the list.
func (r *RedisCache) PushJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.LPush(ctx, key, data).Err()
}

// PopJSON blocks up to timeout for an element at the tail of the list and
// decodes it into dest. It reports false when the timeout elapsed.
func (r *RedisCache) PopJSON(ctx context.Context, key string, timeout time.Duration, dest interface{}) (bool, error) {
	result, err := r.client.BRPop(ctx, timeout, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	// result is [key, value]
	if len(result) != 2 {
		return false, fmt.Errorf("unexpected BRPOP reply of %d elements", len(result))
	}
	if err := json.Unmarshal([]byte(result[1]), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *RedisCache) Len(ctx context.Context, key string) (int64, error) {
	return r.client.LLen(ctx, key).Result()
}
