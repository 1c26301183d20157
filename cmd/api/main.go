package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frontandrew/motofleet/internal/app"
	deliveryHTTP "github.com/frontandrew/motofleet/internal/delivery/http"
	"github.com/frontandrew/motofleet/internal/infrastructure/scheduler"
	"github.com/frontandrew/motofleet/internal/pkg/config"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
)

func main() {
	// =========================================================================
	// Configuration
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	logger.SetGlobalLogger(log)
	log.Info("Starting MotoFleet API server", map[string]interface{}{
		"version": "1.0.0",
	})

	// =========================================================================
	// Dépôts, notifications et cas d'utilisation
	// =========================================================================

	ctx := context.Background()
	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to build application", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer application.Close()

	svc := application.Services
	log.Info("Use case services initialized")

	// =========================================================================
	// Tâches périodiques
	// =========================================================================

	sched := scheduler.New(log, cfg.Scheduler.JobTimeout)
	if cfg.Scheduler.Enabled {
		jobs := []struct {
			name string
			spec string
			job  scheduler.Job
		}{
			{"entretien_rappels", cfg.Scheduler.ReminderCron, func(ctx context.Context) error {
				_, err := svc.Entretiens.EnvoyerRappelsNonNotifies(ctx)
				return err
			}},
			{"stock_alertes", cfg.Scheduler.StockAlertCron, func(ctx context.Context) error {
				_, err := svc.Stock.GenererAlerteStockBasNonNotifiees(ctx)
				return err
			}},
		}
		for _, j := range jobs {
			if err := sched.Add(j.name, j.spec, j.job); err != nil {
				log.Fatal("Failed to schedule job", map[string]interface{}{
					"job":   j.name,
					"error": err.Error(),
				})
			}
		}
		sched.Start()
		log.Info("Scheduler started", map[string]interface{}{
			"reminder_cron":    cfg.Scheduler.ReminderCron,
			"stock_alert_cron": cfg.Scheduler.StockAlertCron,
		})
	}

	// =========================================================================
	// Handlers et routeur HTTP
	// =========================================================================

	router := deliveryHTTP.NewRouter(
		deliveryHTTP.NewFleetHandler(svc.Clients, svc.Motos, log),
		deliveryHTTP.NewMaintenanceHandler(svc.Entretiens, svc.Pannes, log),
		deliveryHTTP.NewStockHandler(svc.Stock, svc.Commandes, log),
		deliveryHTTP.NewEssaiHandler(svc.Conducteurs, svc.Essais, svc.Incidents, log),
		deliveryHTTP.NewNotificationHandler(svc.Notifications, log),
		log,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Démarrage du serveur
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Arrêt propre
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		sched.Stop(ctx)

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
