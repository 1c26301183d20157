package client

import (
	"context"
	"fmt"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// GererRequest - création (ID nul) ou mise à jour d'un client
type GererRequest struct {
	ID          int64  `json:"id,omitempty"`
	Nom         string `json:"nom" validate:"required"`
	Type        string `json:"type" validate:"required"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// Service - gestion des clients propriétaires de motos
type Service struct {
	clientRepo repository.ClientRepository
	logger     logger.Logger
}

func NewService(clientRepo repository.ClientRepository, logger logger.Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (s *Service) Gerer(ctx context.Context, req *GererRequest) (*domain.Client, error) {
	if req.ID == 0 {
		client, err := domain.NewClient(domain.ClientProps{Nom: req.Nom, Type: req.Type, ContactInfo: req.ContactInfo})
		if err != nil {
			return nil, err
		}
		saved, err := s.clientRepo.Save(ctx, client)
		if err != nil {
			return nil, fmt.Errorf("failed to save client: %w", err)
		}
		s.logger.Info("Client created", map[string]interface{}{"client_id": saved.ID()})
		return saved, nil
	}

	stored, err := s.clientRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	client := stored.WithID(stored.ID())
	if err := client.SetNom(req.Nom); err != nil {
		return nil, err
	}
	if err := client.SetType(req.Type); err != nil {
		return nil, err
	}
	client.SetContactInfo(req.ContactInfo)

	updated, err := s.clientRepo.Update(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	s.logger.Info("Client updated", map[string]interface{}{"client_id": updated.ID()})
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.clientRepo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clientRepo.FindAll(ctx)
}

// Delete échoue si le client n'existe pas; les motos qui le référencent sont conservées
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.clientRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	s.logger.Info("Client deleted", map[string]interface{}{"client_id": id})
	return nil
}
