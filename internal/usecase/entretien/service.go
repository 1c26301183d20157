package entretien

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/infrastructure/notifier"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository"
)

// DescriptionPlanifiee - description initiale d'un entretien planifié
const DescriptionPlanifiee = "Entretien planifié"

// PlanifierRequest - demande de planification d'un entretien
type PlanifierRequest struct {
	MotoID        int64      `json:"moto_id" validate:"required"`
	TypeEntretien string     `json:"type_entretien" validate:"required"`
	DatePlanifiee *time.Time `json:"date_planifiee,omitempty"`
	Kilometrage   *int       `json:"kilometrage,omitempty" validate:"omitempty,min=0"`
}

// EnregistrerRequest - enregistrement d'un entretien réalisé
type EnregistrerRequest struct {
	EntretienID  int64     `json:"entretien_id" validate:"required"`
	DateRealisee time.Time `json:"date_realisee" validate:"required"`
	Cout         float64   `json:"cout" validate:"min=0"`
	Description  string    `json:"description"`
	Kilometrage  *int      `json:"kilometrage,omitempty" validate:"omitempty,min=0"`
}

// Service regroupe la planification, la réalisation et les rappels d'entretien
type Service struct {
	motoRepo         repository.MotoRepository
	entretienRepo    repository.EntretienRepository
	notificationRepo repository.NotificationRepository
	dispatcher       notifier.Dispatcher
	logger           logger.Logger
	now              func() time.Time
}

func NewService(
	motoRepo repository.MotoRepository,
	entretienRepo repository.EntretienRepository,
	notificationRepo repository.NotificationRepository,
	dispatcher notifier.Dispatcher,
	logger logger.Logger,
) *Service {
	return &Service{
		motoRepo:         motoRepo,
		entretienRepo:    entretienRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		logger:           logger,
		now:              time.Now,
	}
}

// Planifier crée un entretien pour une moto.
// Un entretien curatif exige une date et un kilométrage; sinon ils sont
// déduits des intervalles du modèle de la moto.
func (s *Service) Planifier(ctx context.Context, req *PlanifierRequest) (*domain.Entretien, error) {
	moto, err := s.motoRepo.FindByID(ctx, req.MotoID)
	if err != nil {
		return nil, err
	}

	var (
		datePlanifiee time.Time
		kilometrage   int
	)

	if isCuratif(req.TypeEntretien) {
		if req.DatePlanifiee == nil {
			return nil, domain.ErrPlannedDateRequired
		}
		if req.Kilometrage == nil {
			return nil, domain.ErrMileageRequired
		}
		datePlanifiee = *req.DatePlanifiee
		kilometrage = *req.Kilometrage
	} else {
		if req.DatePlanifiee != nil {
			datePlanifiee = *req.DatePlanifiee
		} else {
			datePlanifiee = s.now().AddDate(moto.Modele().IntervalleAnnees(), 0, 0)
		}
		if req.Kilometrage != nil {
			kilometrage = *req.Kilometrage
		} else {
			kilometrage = moto.KilometrageActuel() + moto.Modele().IntervalleKm()
		}
	}

	entretien, err := domain.NewEntretien(domain.EntretienProps{
		Moto:          moto,
		TypeEntretien: req.TypeEntretien,
		DatePlanifiee: &datePlanifiee,
		Kilometrage:   kilometrage,
		Cout:          0,
		Description:   DescriptionPlanifiee,
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.entretienRepo.Save(ctx, entretien)
	if err != nil {
		return nil, fmt.Errorf("failed to save entretien: %w", err)
	}

	s.logger.Info("Entretien planned", map[string]interface{}{
		"entretien_id":   saved.ID(),
		"moto_id":        moto.ID(),
		"type":           saved.TypeEntretien(),
		"date_planifiee": datePlanifiee,
		"kilometrage":    kilometrage,
	})

	return saved, nil
}

// Enregistrer marque un entretien comme réalisé
func (s *Service) Enregistrer(ctx context.Context, req *EnregistrerRequest) (*domain.Entretien, error) {
	stored, err := s.entretienRepo.FindByID(ctx, req.EntretienID)
	if err != nil {
		return nil, err
	}

	// Les modifications portent sur une copie: l'entité stockée reste intacte
	// si une valeur est refusée.
	entretien := stored.WithID(stored.ID())
	dateRealisee := req.DateRealisee
	entretien.SetDateRealisee(&dateRealisee)
	if err := entretien.SetCout(req.Cout); err != nil {
		return nil, err
	}
	entretien.SetDescription(req.Description)
	if req.Kilometrage != nil {
		if err := entretien.SetKilometrage(*req.Kilometrage); err != nil {
			return nil, err
		}
	}

	updated, err := s.entretienRepo.Update(ctx, entretien)
	if err != nil {
		return nil, fmt.Errorf("failed to update entretien: %w", err)
	}

	s.logger.Info("Entretien completed", map[string]interface{}{
		"entretien_id":  updated.ID(),
		"date_realisee": dateRealisee,
		"cout":          updated.Cout(),
	})

	return updated, nil
}

// EnvoyerRappels crée une notification pour chaque entretien dû dont la moto
// a un client. Les entretiens sans client sont ignorés.
func (s *Service) EnvoyerRappels(ctx context.Context) ([]*domain.Notification, error) {
	return s.envoyerRappels(ctx, false)
}

// EnvoyerRappelsNonNotifies fait de même en ignorant les entretiens qui ont
// déjà un rappel non lu (exécution périodique).
func (s *Service) EnvoyerRappelsNonNotifies(ctx context.Context) ([]*domain.Notification, error) {
	return s.envoyerRappels(ctx, true)
}

func (s *Service) envoyerRappels(ctx context.Context, skipNotified bool) ([]*domain.Notification, error) {
	entretiens, err := s.entretienRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entretiens: %w", err)
	}

	now := s.now()
	created := make([]*domain.Notification, 0)

	for _, entretien := range entretiens {
		if !entretien.EstDu(now) {
			continue
		}

		if skipNotified {
			pending, err := s.notificationRepo.FindUnreadByEntretienID(ctx, entretien.ID())
			if err != nil {
				return created, fmt.Errorf("failed to find reminders: %w", err)
			}
			if len(pending) > 0 {
				continue
			}
		}

		moto, err := s.currentMoto(ctx, entretien.Moto())
		if err != nil {
			return created, err
		}

		client := moto.Client()
		if client == nil {
			s.logger.Warn("Reminder skipped: moto has no client", map[string]interface{}{
				"entretien_id": entretien.ID(),
				"moto_id":      moto.ID(),
			})
			continue
		}

		entretien = entretien.WithID(entretien.ID())
		if err := entretien.SetMoto(moto); err != nil {
			return created, err
		}

		notification, err := domain.NewNotification(domain.NotificationProps{
			Entretien:        entretien,
			Client:           client,
			Message:          RappelMessage(entretien),
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
			s.logger.Error("Failed to dispatch reminder", map[string]interface{}{
				"notification_id": saved.ID(),
				"error":           err.Error(),
			})
		}
	}

	s.logger.Info("Maintenance reminders sent", map[string]interface{}{
		"count": len(created),
	})

	return created, nil
}

// currentMoto relit la moto dans le dépôt; une moto supprimée garde sa
// dernière version connue.
func (s *Service) currentMoto(ctx context.Context, known *domain.Moto) (*domain.Moto, error) {
	moto, err := s.motoRepo.FindByID(ctx, known.ID())
	switch {
	case err == nil:
		return moto, nil
	case errors.Is(err, domain.ErrNotFound):
		return known, nil
	default:
		return nil, fmt.Errorf("failed to find moto: %w", err)
	}
}

func isCuratif(typeEntretien string) bool {
	return strings.EqualFold(strings.TrimSpace(typeEntretien), domain.EntretienCuratif)
}

// RappelMessage - texte du rappel envoyé au client
func RappelMessage(e *domain.Entretien) string {
	return fmt.Sprintf("L'entretien prévu le %s est dû.", e.DatePlanifiee().Format("02/01/2006"))
}

func (s *Service) List(ctx context.Context) ([]*domain.Entretien, error) {
	return s.entretienRepo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Entretien, error) {
	return s.entretienRepo.FindByID(ctx, id)
}
