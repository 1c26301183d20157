package notifier

import (
	"context"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
)

// LogDispatcher écrit chaque notification dans le journal
type LogDispatcher struct {
	logger logger.Logger
}

func NewLogDispatcher(logger logger.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(_ context.Context, n *domain.Notification) error {
	fields := map[string]interface{}{
		"notification_id": n.ID(),
		"client":          n.Client().Nom(),
		"contact":         n.Client().ContactInfo(),
		"message":         n.Message(),
	}
	if n.Entretien() != nil {
		fields["entretien_id"] = n.Entretien().ID()
	}
	if n.Piece() != nil {
		fields["piece_id"] = n.Piece().ID()
	}
	d.logger.Info("Notification dispatched", fields)
	return nil
}
