package conducteur

import (
	"context"
	"fmt"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// GererRequest - création (ID nul) ou mise à jour d'un profil de conducteur
type GererRequest struct {
	ID               int64  `json:"id,omitempty"`
	Nom              string `json:"nom" validate:"required"`
	Permis           string `json:"permis" validate:"required"`
	ExperienceAnnees int    `json:"experience_annees" validate:"min=0"`
	ContactInfo      string `json:"contact_info,omitempty"`
}

// Service - profils des conducteurs d'essai
type Service struct {
	conducteurRepo repository.ConducteurRepository
	logger         logger.Logger
}

func NewService(conducteurRepo repository.ConducteurRepository, logger logger.Logger) *Service {
	return &Service{
		conducteurRepo: conducteurRepo,
		logger:         logger,
	}
}

// Gerer crée le profil, ou met à jour celui désigné par ID
func (s *Service) Gerer(ctx context.Context, req *GererRequest) (*domain.Conducteur, error) {
	if req.ID == 0 {
		conducteur, err := domain.NewConducteur(domain.ConducteurProps{
			Nom:              req.Nom,
			Permis:           req.Permis,
			ExperienceAnnees: req.ExperienceAnnees,
			ContactInfo:      req.ContactInfo,
		})
		if err != nil {
			return nil, err
		}
		saved, err := s.conducteurRepo.Save(ctx, conducteur)
		if err != nil {
			return nil, fmt.Errorf("failed to save conducteur: %w", err)
		}
		s.logger.Info("Conducteur created", map[string]interface{}{"conducteur_id": saved.ID()})
		return saved, nil
	}

	stored, err := s.conducteurRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	conducteur := stored.WithID(stored.ID())
	if err := conducteur.SetNom(req.Nom); err != nil {
		return nil, err
	}
	if err := conducteur.SetPermis(req.Permis); err != nil {
		return nil, err
	}
	if err := conducteur.SetExperienceAnnees(req.ExperienceAnnees); err != nil {
		return nil, err
	}
	conducteur.SetContactInfo(req.ContactInfo)

	updated, err := s.conducteurRepo.Update(ctx, conducteur)
	if err != nil {
		return nil, fmt.Errorf("failed to update conducteur: %w", err)
	}
	s.logger.Info("Conducteur updated", map[string]interface{}{"conducteur_id": updated.ID()})
	return updated, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Conducteur, error) {
	return s.conducteurRepo.FindAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.conducteurRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.conducteurRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete conducteur: %w", err)
	}
	s.logger.Info("Conducteur deleted", map[string]interface{}{"conducteur_id": id})
	return nil
}
