package commande

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// PasserRequest - commande de réapprovisionnement d'une pièce
type PasserRequest struct {
	PieceID        int64     `json:"piece_id" validate:"required"`
	DateCommande   time.Time `json:"date_commande" validate:"required"`
	Quantite       int       `json:"quantite" validate:"required,gt=0"`
	Cout           float64   `json:"cout" validate:"min=0"`
	DelaiLivraison *int      `json:"delai_livraison,omitempty" validate:"omitempty,min=0"`
	Statut         string    `json:"statut" validate:"required"`
}

// HistoriqueRequest - filtre optionnel par pièce
type HistoriqueRequest struct {
	PieceID int64 `json:"piece_id,omitempty"`
}

// Service - commandes de pièces et historique
type Service struct {
	pieceRepo    repository.PieceRepository
	commandeRepo repository.CommandePieceRepository
	logger       logger.Logger
}

func NewService(
	pieceRepo repository.PieceRepository,
	commandeRepo repository.CommandePieceRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		pieceRepo:    pieceRepo,
		commandeRepo: commandeRepo,
		logger:       logger,
	}
}

// Passer enregistre une commande pour une pièce existante
func (s *Service) Passer(ctx context.Context, req *PasserRequest) (*domain.CommandePiece, error) {
	piece, err := s.pieceRepo.FindByID(ctx, req.PieceID)
	if err != nil {
		return nil, err
	}

	commande, err := domain.NewCommandePiece(domain.CommandePieceProps{
		Piece:          piece,
		DateCommande:   req.DateCommande,
		Quantite:       req.Quantite,
		Cout:           req.Cout,
		DelaiLivraison: req.DelaiLivraison,
		Statut:         req.Statut,
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.commandeRepo.Save(ctx, commande)
	if err != nil {
		return nil, fmt.Errorf("failed to save commande: %w", err)
	}

	s.logger.Info("Commande placed", map[string]interface{}{
		"commande_id": saved.ID(),
		"piece_id":    piece.ID(),
		"quantite":    saved.Quantite(),
		"statut":      saved.Statut(),
	})

	return saved, nil
}

// Historique renvoie les commandes d'une pièce, ou toutes si aucun filtre n'est donné
func (s *Service) Historique(ctx context.Context, req *HistoriqueRequest) ([]*domain.CommandePiece, error) {
	if req != nil && req.PieceID != 0 {
		return s.commandeRepo.FindByPieceID(ctx, req.PieceID)
	}
	return s.commandeRepo.FindAll(ctx)
}
