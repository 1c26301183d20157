package cached

import (
	"context"
	"strconv"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/redis"
	"github.com/frontandrew/motofleet/internal/repository"
)

const (
	unreadCountKey = "notifications:unread"
	// Borne la durée d'un compteur périmé écrit après une invalidation concurrente
	unreadCountTTL = 30 * time.Second
)

// Cache - sous-ensemble du client Redis utilisé par le décorateur
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

var _ Cache = (*redis.Client)(nil)

// NotificationRepository ajoute un compteur de notifications non lues en cache
// au dépôt sous-jacent. Toute écriture invalide le compteur.
type NotificationRepository struct {
	repository.NotificationRepository
	cache Cache
}

func NewNotificationRepository(repo repository.NotificationRepository, cache Cache) *NotificationRepository {
	return &NotificationRepository{
		NotificationRepository: repo,
		cache:                  cache,
	}
}

// UnreadCount lit le compteur en cache, ou le recalcule depuis le dépôt
func (r *NotificationRepository) UnreadCount(ctx context.Context) (int, error) {
	// 1. Cache
	if cached, err := r.cache.Get(ctx, unreadCountKey); err == nil {
		if n, convErr := strconv.Atoi(cached); convErr == nil {
			return n, nil
		}
	}

	// 2. Cache miss ou Redis indisponible: on recalcule
	all, err := r.NotificationRepository.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range all {
		if !n.EstLu() {
			count++
		}
	}

	// 3. Écriture en cache (non critique)
	_ = r.cache.Set(ctx, unreadCountKey, count, unreadCountTTL)

	return count, nil
}

func (r *NotificationRepository) Save(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	saved, err := r.NotificationRepository.Save(ctx, n)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return saved, nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	updated, err := r.NotificationRepository.Update(ctx, n)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.NotificationRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.invalidate(ctx)
	}
	return deleted, nil
}

func (r *NotificationRepository) invalidate(ctx context.Context) {
	_ = r.cache.Del(ctx, unreadCountKey)
}
