package stock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/infrastructure/notifier"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// PieceRequest - création (ID nul) ou mise à jour d'une pièce détachée
type PieceRequest struct {
	ID          int64   `json:"id,omitempty"`
	Nom         string  `json:"nom" validate:"required"`
	Description string  `json:"description,omitempty"`
	Prix        float64 `json:"prix" validate:"min=0"`
}

// GererRequest - quantité en stock d'une pièce; le seuil n'est modifié que s'il est fourni
type GererRequest struct {
	PieceID     int64 `json:"piece_id" validate:"required"`
	Quantite    int   `json:"quantite" validate:"min=0"`
	SeuilAlerte *int  `json:"seuil_alerte,omitempty" validate:"omitempty,min=0"`
}

// Service - pièces détachées, niveaux de stock et alertes de stock bas
type Service struct {
	pieceRepo        repository.PieceRepository
	stockRepo        repository.StockRepository
	notificationRepo repository.NotificationRepository
	dispatcher       notifier.Dispatcher
	logger           logger.Logger
}

func NewService(
	pieceRepo repository.PieceRepository,
	stockRepo repository.StockRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher notifier.Dispatcher,
	logger logger.Logger,
) *Service {
	return &Service{
		pieceRepo:        pieceRepo,
		stockRepo:        stockRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		logger:           logger,
	}
}

// GererPiece crée ou met à jour une pièce
func (s *Service) GererPiece(ctx context.Context, req *PieceRequest) (*domain.Piece, error) {
	if req.ID == 0 {
		piece, err := domain.NewPiece(domain.PieceProps{Nom: req.Nom, Description: req.Description, Prix: req.Prix})
		if err != nil {
			return nil, err
		}
		saved, err := s.pieceRepo.Save(ctx, piece)
		if err != nil {
			return nil, fmt.Errorf("failed to save piece: %w", err)
		}
		s.logger.Info("Piece created", map[string]interface{}{"piece_id": saved.ID(), "nom": saved.Nom()})
		return saved, nil
	}

	stored, err := s.pieceRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	piece := stored.WithID(stored.ID())
	if err := piece.SetNom(req.Nom); err != nil {
		return nil, err
	}
	if err := piece.SetPrix(req.Prix); err != nil {
		return nil, err
	}
	piece.SetDescription(req.Description)

	updated, err := s.pieceRepo.Update(ctx, piece)
	if err != nil {
		return nil, fmt.Errorf("failed to update piece: %w", err)
	}
	s.logger.Info("Piece updated", map[string]interface{}{"piece_id": updated.ID()})
	return updated, nil
}

func (s *Service) ListPieces(ctx context.Context) ([]*domain.Piece, error) {
	return s.pieceRepo.FindAll(ctx)
}

func (s *Service) ListStocks(ctx context.Context) ([]*domain.Stock, error) {
	return s.stockRepo.FindAll(ctx)
}

// Gerer enregistre la quantité d'une pièce: le stock existant est remplacé,
// sinon un stock est créé avec un seuil de 0 par défaut.
func (s *Service) Gerer(ctx context.Context, req *GererRequest) (*domain.Stock, error) {
	piece, err := s.pieceRepo.FindByID(ctx, req.PieceID)
	if err != nil {
		return nil, err
	}

	existing, err := s.stockRepo.FindByPieceID(ctx, req.PieceID)
	switch {
	case err == nil:
		stock := existing.WithID(existing.ID())
		if err := stock.SetQuantite(req.Quantite); err != nil {
			return nil, err
		}
		if req.SeuilAlerte != nil {
			if err := stock.SetSeuilAlerte(*req.SeuilAlerte); err != nil {
				return nil, err
			}
		}
		updated, err := s.stockRepo.Update(ctx, stock)
		if err != nil {
			return nil, fmt.Errorf("failed to update stock: %w", err)
		}
		s.logger.Info("Stock updated", map[string]interface{}{
			"stock_id": updated.ID(),
			"piece_id": piece.ID(),
			"quantite": updated.Quantite(),
		})
		return updated, nil

	case errors.Is(err, domain.ErrNotFound):
		seuil := 0
		if req.SeuilAlerte != nil {
			seuil = *req.SeuilAlerte
		}
		stock, err := domain.NewStock(domain.StockProps{Piece: piece, Quantite: req.Quantite, SeuilAlerte: seuil})
		if err != nil {
			return nil, err
		}
		saved, err := s.stockRepo.Save(ctx, stock)
		if err != nil {
			return nil, fmt.Errorf("failed to save stock: %w", err)
		}
		s.logger.Info("Stock created", map[string]interface{}{
			"stock_id": saved.ID(),
			"piece_id": piece.ID(),
			"quantite": saved.Quantite(),
		})
		return saved, nil

	default:
		return nil, fmt.Errorf("failed to find stock: %w", err)
	}
}

// GenererAlerteStockBas crée une notification adressée au gestionnaire pour
// chaque stock dont la quantité est inférieure ou égale au seuil d'alerte.
func (s *Service) GenererAlerteStockBas(ctx context.Context) ([]*domain.Notification, error) {
	return s.genererAlertes(ctx, false)
}

// GenererAlerteStockBasNonNotifiees ignore les pièces qui ont déjà une
// alerte non lue (exécution périodique).
func (s *Service) GenererAlerteStockBasNonNotifiees(ctx context.Context) ([]*domain.Notification, error) {
	return s.genererAlertes(ctx, true)
}

func (s *Service) genererAlertes(ctx context.Context, skipNotified bool) ([]*domain.Notification, error) {
	stocks, err := s.stockRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stocks: %w", err)
	}

	now := time.Now()
	gestionnaire := domain.NewGestionnaire()
	created := make([]*domain.Notification, 0)

	for _, stock := range stocks {
		if !stock.EstBas() {
			continue
		}

		if skipNotified {
			pending, err := s.notificationRepo.FindUnreadByPieceID(ctx, stock.Piece().ID())
			if err != nil {
				return created, fmt.Errorf("failed to find stock alerts: %w", err)
			}
			if len(pending) > 0 {
				continue
			}
		}

		piece, err := s.currentPiece(ctx, stock.Piece())
		if err != nil {
			return created, err
		}
		stock = stock.WithID(stock.ID())
		if err := stock.SetPiece(piece); err != nil {
			return created, err
		}

		notification, err := domain.NewNotification(domain.NotificationProps{
			Piece:            piece,
			Client:           gestionnaire,
			Message:          AlerteMessage(stock),
			DateNotification: now,
		})
		if err != nil {
			return created, err
		}

		saved, err := s.notificationRepo.Save(ctx, notification)
		if err != nil {
			return created, fmt.Errorf("failed to save notification: %w", err)
		}
		created = append(created, saved)

		if err := s.dispatcher.Dispatch(ctx, saved); err != nil {
			s.logger.Error("Failed to dispatch stock alert", map[string]interface{}{
				"notification_id": saved.ID(),
				"error":           err.Error(),
			})
		}
	}

	if len(created) > 0 {
		s.logger.Warn("Low stock detected", map[string]interface{}{"count": len(created)})
	}

	return created, nil
}

// currentPiece relit la pièce dans le dépôt; une pièce supprimée garde sa
// dernière version connue.
func (s *Service) currentPiece(ctx context.Context, known *domain.Piece) (*domain.Piece, error) {
	piece, err := s.pieceRepo.FindByID(ctx, known.ID())
	switch {
	case err == nil:
		return piece, nil
	case errors.Is(err, domain.ErrNotFound):
		return known, nil
	default:
		return nil, fmt.Errorf("failed to find piece: %w", err)
	}
}

// AlerteMessage - texte de l'alerte de stock bas
func AlerteMessage(stock *domain.Stock) string {
	return fmt.Sprintf("Alerte Stock: La quantité de \"%s\" est basse (%d). Seuil d'alerte: %d.",
		stock.Piece().Nom(), stock.Quantite(), stock.SeuilAlerte())
}
