package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client é o contrato mínimo de cache que o middleware de rate limit usa.
type Client interface {
	GetInt(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Incr(ctx context.Context, key string) error
}

// ErrCacheMiss é devolvido quando a chave não existe.
var ErrCacheMiss = errors.New("cache: key not found")

type redisClient struct {
	rdb *redis.Client
}

func NewRedisClient(url string) Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("invalid redis url: %v", err)
	}
	return &redisClient{rdb: redis.NewClient(opts)}
}

func (c *redisClient) GetInt(ctx context.Context, key string) (int, error) {
	v, err := c.rdb.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	return v, err
}

func (c *redisClient) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

func (c *redisClient) Incr(ctx context.Context, key string) error {
	return c.rdb.Incr(ctx, key).Err()
}
