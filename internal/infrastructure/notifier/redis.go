package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/redis"
)

// DefaultChannel - canal pub/sub par défaut
const DefaultChannel = "motofleet:notifications"

// RedisDispatcher publie la notification sérialisée sur un canal Redis
type RedisDispatcher struct {
	client  *redis.Client
	channel string
}

func NewRedisDispatcher(client *redis.Client, channel string) *RedisDispatcher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisDispatcher{client: client, channel: channel}
}

func (d *RedisDispatcher) Dispatch(ctx context.Context, n *domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if _, err := d.client.Publish(ctx, d.channel, payload); err != nil {
		return fmt.Errorf("failed to publish notification %d: %w", n.ID(), err)
	}
	return nil
}
