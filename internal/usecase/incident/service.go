package incident

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// EnregistrerRequest - au moins un des identifiants essai, conducteur ou moto est requis
type EnregistrerRequest struct {
	EssaiID      int64     `json:"essai_id,omitempty"`
	ConducteurID int64     `json:"conducteur_id,omitempty"`
	MotoID       int64     `json:"moto_id,omitempty"`
	DateIncident time.Time `json:"date_incident" validate:"required"`
	Description  string    `json:"description" validate:"required"`
	Severite     string    `json:"severite" validate:"required"`
}

// Service - incidents survenus pendant les essais ou en circulation
type Service struct {
	incidentRepo   repository.IncidentRepository
	essaiRepo      repository.EssaiRepository
	conducteurRepo repository.ConducteurRepository
	motoRepo       repository.MotoRepository
	logger         logger.Logger
}

func NewService(
	incidentRepo repository.IncidentRepository,
	essaiRepo repository.EssaiRepository,
	conducteurRepo repository.ConducteurRepository,
	motoRepo repository.MotoRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		incidentRepo:   incidentRepo,
		essaiRepo:      essaiRepo,
		conducteurRepo: conducteurRepo,
		motoRepo:       motoRepo,
		logger:         logger,
	}
}

func (s *Service) Enregistrer(ctx context.Context, req *EnregistrerRequest) (*domain.Incident, error) {
	if req.EssaiID == 0 && req.ConducteurID == 0 && req.MotoID == 0 {
		return nil, domain.ErrNoAssociation
	}

	props := domain.IncidentProps{
		DateIncident: req.DateIncident,
		Description:  req.Description,
		Severite:     req.Severite,
	}

	if req.EssaiID != 0 {
		essai, err := s.essaiRepo.FindByID(ctx, req.EssaiID)
		if err != nil {
			return nil, err
		}
		props.Essai = essai
	}
	if req.ConducteurID != 0 {
		conducteur, err := s.conducteurRepo.FindByID(ctx, req.ConducteurID)
		if err != nil {
			return nil, err
		}
		props.Conducteur = conducteur
	}
	if req.MotoID != 0 {
		moto, err := s.motoRepo.FindByID(ctx, req.MotoID)
		if err != nil {
			return nil, err
		}
		props.Moto = moto
	}

	incident, err := domain.NewIncident(props)
	if err != nil {
		return nil, err
	}

	saved, err := s.incidentRepo.Save(ctx, incident)
	if err != nil {
		return nil, fmt.Errorf("failed to save incident: %w", err)
	}

	s.logger.Info("Incident registered", map[string]interface{}{
		"incident_id": saved.ID(),
		"severite":    saved.Severite(),
	})

	return saved, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Incident, error) {
	return s.incidentRepo.FindAll(ctx)
}
