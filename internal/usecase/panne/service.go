package panne

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// EnregistrerRequest - déclaration d'une panne, rattachée à une moto,
// à un entretien ou aux deux
type EnregistrerRequest struct {
	MotoID       int64     `json:"moto_id,omitempty"`
	EntretienID  int64     `json:"entretien_id,omitempty"`
	DateEvent    time.Time `json:"date_event" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Cout         float64   `json:"cout" validate:"min=0"`
	SousGarantie bool      `json:"sous_garantie"`
}

// Service - enregistrement des pannes et prises en charge sous garantie
type Service struct {
	panneRepo     repository.PanneRepository
	motoRepo      repository.MotoRepository
	entretienRepo repository.EntretienRepository
	logger        logger.Logger
}

func NewService(
	panneRepo repository.PanneRepository,
	motoRepo repository.MotoRepository,
	entretienRepo repository.EntretienRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		panneRepo:     panneRepo,
		motoRepo:      motoRepo,
		entretienRepo: entretienRepo,
		logger:        logger,
	}
}

// Enregistrer vérifie l'association avant toute lecture ou écriture
func (s *Service) Enregistrer(ctx context.Context, req *EnregistrerRequest) (*domain.Panne, error) {
	if req.MotoID == 0 && req.EntretienID == 0 {
		return nil, domain.ErrNoAssociation
	}

	props := domain.PanneProps{
		DateEvent:    req.DateEvent,
		Description:  req.Description,
		Cout:         req.Cout,
		SousGarantie: req.SousGarantie,
	}

	if req.EntretienID != 0 {
		entretien, err := s.entretienRepo.FindByID(ctx, req.EntretienID)
		if err != nil {
			return nil, err
		}
		props.Entretien = entretien
	}
	if req.MotoID != 0 {
		moto, err := s.motoRepo.FindByID(ctx, req.MotoID)
		if err != nil {
			return nil, err
		}
		props.Moto = moto
	}

	panne, err := domain.NewPanne(props)
	if err != nil {
		return nil, err
	}

	saved, err := s.panneRepo.Save(ctx, panne)
	if err != nil {
		return nil, fmt.Errorf("failed to save panne: %w", err)
	}

	s.logger.Info("Panne registered", map[string]interface{}{
		"panne_id":      saved.ID(),
		"moto_id":       req.MotoID,
		"entretien_id":  req.EntretienID,
		"sous_garantie": saved.SousGarantie(),
	})

	return saved, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Panne, error) {
	return s.panneRepo.FindAll(ctx)
}
