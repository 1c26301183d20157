// Package scheduler exécute périodiquement les rappels d'entretien et les
// alertes de stock bas.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/frontandrew/motofleet/internal/pkg/logger"
)

// Job - tâche planifiée; l'erreur est journalisée, jamais propagée
type Job func(ctx context.Context) error

// Scheduler enveloppe cron.Cron avec journalisation et délai par exécution
type Scheduler struct {
	cron    *cron.Cron
	logger  logger.Logger
	timeout time.Duration
	entries map[string]cron.EntryID
}

func New(logger logger.Logger, timeout time.Duration) *Scheduler {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		cron:    cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		logger:  logger,
		timeout: timeout,
		entries: make(map[string]cron.EntryID),
	}
}

// Add enregistre un job nommé; spec suit la syntaxe cron standard
// (5 champs) ou les descripteurs "@every 1h", "@daily"...
func (s *Scheduler) Add(name, spec string, job Job) error {
	id, err := s.cron.AddFunc(spec, func() { s.run(name, job) })
	if err != nil {
		return fmt.Errorf("failed to schedule %s (%q): %w", name, spec, err)
	}
	s.entries[name] = id
	s.logger.Info("Job scheduled", map[string]interface{}{"job": name, "spec": spec})
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	log := s.logger.With("job", name).With("run_id", uuid.NewString())
	start := time.Now()

	if err := job(ctx); err != nil {
		log.Error("Scheduled job failed", map[string]interface{}{"error": err.Error()})
		return
	}
	log.Debug("Scheduled job done", map[string]interface{}{"duration": time.Since(start).String()})
}

// Next renvoie la prochaine exécution prévue d'un job
func (s *Scheduler) Next(name string) (time.Time, bool) {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop attend la fin des jobs en cours ou l'expiration de ctx
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
