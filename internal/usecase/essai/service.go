package essai

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// PlanifierRequest - planification d'un essai
type PlanifierRequest struct {
	MotoID              int64      `json:"moto_id" validate:"required"`
	ConducteurID        int64      `json:"conducteur_id" validate:"required"`
	DateDebut           time.Time  `json:"date_debut" validate:"required"`
	DateFin             *time.Time `json:"date_fin,omitempty"`
	KilometrageParcouru int        `json:"kilometrage_parcouru" validate:"min=0"`
}

// EnregistrerRequest - clôture d'un essai
type EnregistrerRequest struct {
	EssaiID             int64     `json:"essai_id" validate:"required"`
	DateFin             time.Time `json:"date_fin" validate:"required"`
	KilometrageParcouru int       `json:"kilometrage_parcouru" validate:"min=0"`
}

// Service - essais de motos par les conducteurs
type Service struct {
	essaiRepo      repository.EssaiRepository
	motoRepo       repository.MotoRepository
	conducteurRepo repository.ConducteurRepository
	logger         logger.Logger
}

func NewService(
	essaiRepo repository.EssaiRepository,
	motoRepo repository.MotoRepository,
	conducteurRepo repository.ConducteurRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		essaiRepo:      essaiRepo,
		motoRepo:       motoRepo,
		conducteurRepo: conducteurRepo,
		logger:         logger,
	}
}

func (s *Service) Planifier(ctx context.Context, req *PlanifierRequest) (*domain.Essai, error) {
	moto, err := s.motoRepo.FindByID(ctx, req.MotoID)
	if err != nil {
		return nil, err
	}
	conducteur, err := s.conducteurRepo.FindByID(ctx, req.ConducteurID)
	if err != nil {
		return nil, err
	}

	essai, err := domain.NewEssai(domain.EssaiProps{
		Moto:                moto,
		Conducteur:          conducteur,
		DateDebut:           req.DateDebut,
		DateFin:             req.DateFin,
		KilometrageParcouru: req.KilometrageParcouru,
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.essaiRepo.Save(ctx, essai)
	if err != nil {
		return nil, fmt.Errorf("failed to save essai: %w", err)
	}

	s.logger.Info("Essai planned", map[string]interface{}{
		"essai_id":      saved.ID(),
		"moto_id":       moto.ID(),
		"conducteur_id": conducteur.ID(),
		"date_debut":    req.DateDebut,
	})

	return saved, nil
}

// Enregistrer fixe la date de fin et le kilométrage réellement parcouru
func (s *Service) Enregistrer(ctx context.Context, req *EnregistrerRequest) (*domain.Essai, error) {
	stored, err := s.essaiRepo.FindByID(ctx, req.EssaiID)
	if err != nil {
		return nil, err
	}

	essai := stored.WithID(stored.ID())
	dateFin := req.DateFin
	if err := essai.SetDateFin(&dateFin); err != nil {
		return nil, err
	}
	if err := essai.SetKilometrageParcouru(req.KilometrageParcouru); err != nil {
		return nil, err
	}

	updated, err := s.essaiRepo.Update(ctx, essai)
	if err != nil {
		return nil, fmt.Errorf("failed to update essai: %w", err)
	}

	s.logger.Info("Essai completed", map[string]interface{}{
		"essai_id":             updated.ID(),
		"kilometrage_parcouru": updated.KilometrageParcouru(),
	})

	return updated, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Essai, error) {
	return s.essaiRepo.FindAll(ctx)
}
