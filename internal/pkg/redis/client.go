package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client enveloppe redis.Client avec les opérations utilisées par l'application
type Client struct {
	client *redis.Client
}

// Config - paramètres de connexion à Redis
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NewClient crée le client et vérifie la connexion
func NewClient(cfg Config) (*Client, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: rdb}, nil
}

// Wrap enveloppe un redis.Client existant (tests, clients partagés)
func Wrap(rdb *redis.Client) *Client {
	return &Client{client: rdb}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Set écrit une valeur avec TTL
func (c *Client) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Get renvoie redis.Nil si la clé n'existe pas
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.client.Incr(ctx, key).Result()
}

// Publish diffuse un message sur un canal pub/sub et renvoie le nombre d'abonnés
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) (int64, error) {
	return c.client.Publish(ctx, channel, message).Result()
}

func (c *Client) Close() error {
	return c.client.Close()
}

// IsNil indique une clé absente
func IsNil(err error) bool {
	return err == redis.Nil
}
