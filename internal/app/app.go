// Package app assemble les dépôts, les canaux de notification et les cas
// d'utilisation partagés par cmd/api et cmd/cli.
package app

import (
	"context"
	"fmt"

	"github.com/frontandrew/motofleet/internal/infrastructure/notifier"
	"github.com/frontandrew/motofleet/internal/infrastructure/seed"
	"github.com/frontandrew/motofleet/internal/pkg/config"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/pkg/redis"
	"github.com/frontandrew/motofleet/internal/repository"
	"github.com/frontandrew/motofleet/internal/repository/cached"
	"github.com/frontandrew/motofleet/internal/repository/memory"
	"github.com/frontandrew/motofleet/internal/usecase/client"
	"github.com/frontandrew/motofleet/internal/usecase/commande"
	"github.com/frontandrew/motofleet/internal/usecase/conducteur"
	"github.com/frontandrew/motofleet/internal/usecase/entretien"
	"github.com/frontandrew/motofleet/internal/usecase/essai"
	"github.com/frontandrew/motofleet/internal/usecase/incident"
	"github.com/frontandrew/motofleet/internal/usecase/moto"
	"github.com/frontandrew/motofleet/internal/usecase/notification"
	"github.com/frontandrew/motofleet/internal/usecase/panne"
	"github.com/frontandrew/motofleet/internal/usecase/stock"
)

// Services - un service par cas d'utilisation
type Services struct {
	Clients       *client.Service
	Motos         *moto.Service
	Entretiens    *entretien.Service
	Pannes        *panne.Service
	Stock         *stock.Service
	Commandes     *commande.Service
	Conducteurs   *conducteur.Service
	Essais        *essai.Service
	Incidents     *incident.Service
	Notifications *notification.Service
}

// NewServices construit les cas d'utilisation sur les dépôts du registre.
// notifications remplace reg.Notifications (décorateur en cache par exemple).
func NewServices(
	reg *memory.Registry,
	notifications repository.NotificationRepository,
	dispatcher notifier.Dispatcher,
	log logger.Logger,
) *Services {
	return &Services{
		Clients:       client.NewService(reg.Clients, log),
		Motos:         moto.NewService(reg.ModelesMoto, reg.Motos, reg.Clients, log),
		Entretiens:    entretien.NewService(reg.Motos, reg.Entretiens, notifications, dispatcher, log),
		Pannes:        panne.NewService(reg.Pannes, reg.Motos, reg.Entretiens, log),
		Stock:         stock.NewService(reg.Pieces, reg.Stocks, notifications, dispatcher, log),
		Commandes:     commande.NewService(reg.Pieces, reg.Commandes, log),
		Conducteurs:   conducteur.NewService(reg.Conducteurs, log),
		Essais:        essai.NewService(reg.Essais, reg.Motos, reg.Conducteurs, log),
		Incidents:     incident.NewService(reg.Incidents, reg.Essais, reg.Conducteurs, reg.Motos, log),
		Notifications: notification.NewService(notifications, log),
	}
}

// Seed - services utilisés par le chargement du fichier YAML
func (s *Services) Seed() seed.Services {
	return seed.Services{
		Clients:     s.Clients,
		Motos:       s.Motos,
		Stock:       s.Stock,
		Conducteurs: s.Conducteurs,
	}
}

// App - état du processus
type App struct {
	Registry *memory.Registry
	Services *Services

	redis *redis.Client
}

// New construit l'application. Redis indisponible n'est pas bloquant: les
// notifications restent en mémoire et sont journalisées.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	reg := memory.NewRegistry()
	a := &App{Registry: reg}

	var notifications repository.NotificationRepository = reg.Notifications
	dispatchers := notifier.Multi{notifier.NewLogDispatcher(log)}

	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn("Redis is not available", map[string]interface{}{
				"error":   err.Error(),
				"address": cfg.Redis.Address(),
			})
		} else {
			a.redis = rdb
			notifications = cached.NewNotificationRepository(reg.Notifications, rdb)
			dispatchers = append(dispatchers, notifier.NewRedisDispatcher(rdb, cfg.Redis.Channel))
			log.Info("Connected to Redis", map[string]interface{}{
				"address": cfg.Redis.Address(),
				"channel": cfg.Redis.Channel,
			})
		}
	}

	if cfg.Slack.WebhookURL != "" {
		dispatchers = append(dispatchers, notifier.NewSlackDispatcher(cfg.Slack.WebhookURL))
		log.Info("Slack notifications enabled")
	}

	a.Services = NewServices(reg, notifications, dispatchers, log)

	if cfg.SeedFile != "" {
		summary, err := seed.LoadFile(ctx, cfg.SeedFile, a.Services.Seed())
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
		fields := summary.Fields()
		fields["file"] = cfg.SeedFile
		log.Info("Seed data loaded", fields)
	}

	return a, nil
}

// Close libère la connexion Redis éventuelle
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}
