package moto

import (
	"context"
	"fmt"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// ModeleRequest - création (ID nul) ou mise à jour d'un modèle.
// Les intervalles absents prennent les valeurs par défaut à la création
// et sont conservés lors d'une mise à jour.
type ModeleRequest struct {
	ID               int64  `json:"id,omitempty"`
	Nom              string `json:"nom" validate:"required"`
	IntervalleKm     *int   `json:"intervalle_km,omitempty" validate:"omitempty,min=0"`
	IntervalleAnnees *int   `json:"intervalle_annees,omitempty" validate:"omitempty,min=0"`
}

// GererRequest - création (ID nul) ou mise à jour d'une moto.
// ClientID nul signifie une moto sans propriétaire.
type GererRequest struct {
	ID                int64      `json:"id,omitempty"`
	ModeleID          int64      `json:"modele_id" validate:"required"`
	ClientID          int64      `json:"client_id,omitempty"`
	NumeroSerie       string     `json:"numero_serie" validate:"required"`
	KilometrageActuel *int       `json:"kilometrage_actuel,omitempty" validate:"omitempty,min=0"`
	DateAchat         *time.Time `json:"date_achat,omitempty"`
	Statut            string     `json:"statut" validate:"required"`
}

// Service - modèles de moto et motos de la flotte
type Service struct {
	modeleRepo repository.ModeleMotoRepository
	motoRepo   repository.MotoRepository
	clientRepo repository.ClientRepository
	logger     logger.Logger
}

func NewService(
	modeleRepo repository.ModeleMotoRepository,
	motoRepo repository.MotoRepository,
	clientRepo repository.ClientRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		modeleRepo: modeleRepo,
		motoRepo:   motoRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// ==================== Modèles ====================

func (s *Service) GererModele(ctx context.Context, req *ModeleRequest) (*domain.ModeleMoto, error) {
	if req.ID == 0 {
		props := domain.ModeleMotoProps{
			Nom:              req.Nom,
			IntervalleKm:     domain.DefaultIntervalleKm,
			IntervalleAnnees: domain.DefaultIntervalleAnnees,
		}
		if req.IntervalleKm != nil {
			props.IntervalleKm = *req.IntervalleKm
		}
		if req.IntervalleAnnees != nil {
			props.IntervalleAnnees = *req.IntervalleAnnees
		}
		modele, err := domain.NewModeleMoto(props)
		if err != nil {
			return nil, err
		}
		saved, err := s.modeleRepo.Save(ctx, modele)
		if err != nil {
			return nil, fmt.Errorf("failed to save modele: %w", err)
		}
		s.logger.Info("Modele created", map[string]interface{}{"modele_id": saved.ID(), "nom": saved.Nom()})
		return saved, nil
	}

	stored, err := s.modeleRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	modele := stored.WithID(stored.ID())
	if err := modele.SetNom(req.Nom); err != nil {
		return nil, err
	}
	if req.IntervalleKm != nil {
		if err := modele.SetIntervalleKm(*req.IntervalleKm); err != nil {
			return nil, err
		}
	}
	if req.IntervalleAnnees != nil {
		if err := modele.SetIntervalleAnnees(*req.IntervalleAnnees); err != nil {
			return nil, err
		}
	}

	updated, err := s.modeleRepo.Update(ctx, modele)
	if err != nil {
		return nil, fmt.Errorf("failed to update modele: %w", err)
	}
	s.logger.Info("Modele updated", map[string]interface{}{"modele_id": updated.ID()})
	return updated, nil
}

func (s *Service) ListModeles(ctx context.Context) ([]*domain.ModeleMoto, error) {
	return s.modeleRepo.FindAll(ctx)
}

func (s *Service) DeleteModele(ctx context.Context, id int64) error {
	if _, err := s.modeleRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.modeleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete modele: %w", err)
	}
	s.logger.Info("Modele deleted", map[string]interface{}{"modele_id": id})
	return nil
}

// ==================== Motos ====================

// Gerer crée ou met à jour une moto. Le numéro de série et la date d'achat
// d'une moto existante ne sont pas modifiés.
func (s *Service) Gerer(ctx context.Context, req *GererRequest) (*domain.Moto, error) {
	modele, err := s.modeleRepo.FindByID(ctx, req.ModeleID)
	if err != nil {
		return nil, err
	}

	var client *domain.Client
	if req.ClientID != 0 {
		client, err = s.clientRepo.FindByID(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
	}

	if req.ID == 0 {
		props := domain.MotoProps{
			Modele:      modele,
			Client:      client,
			NumeroSerie: req.NumeroSerie,
			DateAchat:   time.Now(),
			Statut:      req.Statut,
		}
		if req.KilometrageActuel != nil {
			props.KilometrageActuel = *req.KilometrageActuel
		}
		if req.DateAchat != nil {
			props.DateAchat = *req.DateAchat
		}
		moto, err := domain.NewMoto(props)
		if err != nil {
			return nil, err
		}
		saved, err := s.motoRepo.Save(ctx, moto)
		if err != nil {
			return nil, fmt.Errorf("failed to save moto: %w", err)
		}
		s.logger.Info("Moto created", map[string]interface{}{
			"moto_id":      saved.ID(),
			"numero_serie": saved.NumeroSerie(),
		})
		return saved, nil
	}

	stored, err := s.motoRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	moto := stored.WithID(stored.ID())
	if err := moto.SetModele(modele); err != nil {
		return nil, err
	}
	moto.SetClient(client)
	if req.KilometrageActuel != nil {
		if err := moto.SetKilometrageActuel(*req.KilometrageActuel); err != nil {
			return nil, err
		}
	}
	if err := moto.SetStatut(req.Statut); err != nil {
		return nil, err
	}

	updated, err := s.motoRepo.Update(ctx, moto)
	if err != nil {
		return nil, fmt.Errorf("failed to update moto: %w", err)
	}
	s.logger.Info("Moto updated", map[string]interface{}{"moto_id": updated.ID()})
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Moto, error) {
	return s.motoRepo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Moto, error) {
	return s.motoRepo.FindAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.motoRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.motoRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete moto: %w", err)
	}
	s.logger.Info("Moto deleted", map[string]interface{}{"moto_id": id})
	return nil
}
