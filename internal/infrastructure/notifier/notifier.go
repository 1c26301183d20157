// Package notifier diffuse les notifications créées par les rappels
// d'entretien et les alertes de stock.
package notifier

import (
	"context"
	"errors"

	"github.com/frontandrew/motofleet/internal/domain"
)

// Dispatcher - canal de diffusion d'une notification déjà enregistrée
type Dispatcher interface {
	Dispatch(ctx context.Context, n *domain.Notification) error
}

// Multi diffuse vers plusieurs canaux; chaque canal est tenté même si un autre échoue
type Multi []Dispatcher

func (m Multi) Dispatch(ctx context.Context, n *domain.Notification) error {
	var errs []error
	for _, d := range m {
		if err := d.Dispatch(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder garde les notifications diffusées en mémoire (tests, mode hors ligne)
type Recorder struct {
	Sent []*domain.Notification
}

func (r *Recorder) Dispatch(_ context.Context, n *domain.Notification) error {
	r.Sent = append(r.Sent, n)
	return nil
}
