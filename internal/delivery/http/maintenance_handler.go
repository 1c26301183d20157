package http

import (
	"context"
	"net/http"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/usecase/entretien"
	"github.com/frontandrew/motofleet/internal/usecase/panne"
)

// EntretienService - planification, réalisation et rappels d'entretien
type EntretienService interface {
	Planifier(ctx context.Context, req *entretien.PlanifierRequest) (*domain.Entretien, error)
	Enregistrer(ctx context.Context, req *entretien.EnregistrerRequest) (*domain.Entretien, error)
	EnvoyerRappels(ctx context.Context) ([]*domain.Notification, error)
	List(ctx context.Context) ([]*domain.Entretien, error)
	Get(ctx context.Context, id int64) (*domain.Entretien, error)
}

// PanneService - pannes et garanties
type PanneService interface {
	Enregistrer(ctx context.Context, req *panne.EnregistrerRequest) (*domain.Panne, error)
	List(ctx context.Context) ([]*domain.Panne, error)
}

// MaintenanceHandler gère les entretiens et les pannes
type MaintenanceHandler struct {
	entretienService EntretienService
	panneService     PanneService
	logger           logger.Logger
}

func NewMaintenanceHandler(entretienService EntretienService, panneService PanneService, logger logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		entretienService: entretienService,
		panneService:     panneService,
		logger:           logger,
	}
}

// PlanifierEntretien
// POST /api/v1/entretiens
func (h *MaintenanceHandler) PlanifierEntretien(w http.ResponseWriter, r *http.Request) {
	var req entretien.PlanifierRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.entretienService.Planifier(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "plan entretien", err)
		return
	}
	respondSuccess(w, http.StatusCreated, e)
}

// EnregistrerEntretien enregistre un entretien réalisé; l'id du chemin
// remplace celui du corps.
// POST /api/v1/entretiens/{id}/realisation
func (h *MaintenanceHandler) EnregistrerEntretien(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := entretien.EnregistrerRequest{EntretienID: id}
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.EntretienID = id

	e, err := h.entretienService.Enregistrer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "record entretien", err)
		return
	}
	respondSuccess(w, http.StatusOK, e)
}

// ListEntretiens
// GET /api/v1/entretiens
func (h *MaintenanceHandler) ListEntretiens(w http.ResponseWriter, r *http.Request) {
	entretiens, err := h.entretienService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list entretiens", err)
		return
	}
	respondSuccess(w, http.StatusOK, entretiens)
}

// GetEntretien
// GET /api/v1/entretiens/{id}
func (h *MaintenanceHandler) GetEntretien(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.entretienService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, "get entretien", err)
		return
	}
	respondSuccess(w, http.StatusOK, e)
}

// EnvoyerRappels déclenche les rappels d'entretien dus
// POST /api/v1/entretiens/rappels
func (h *MaintenanceHandler) EnvoyerRappels(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.entretienService.EnvoyerRappels(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "send reminders", err)
		return
	}
	respondSuccess(w, http.StatusOK, notifications)
}

// EnregistrerPanne
// POST /api/v1/pannes
func (h *MaintenanceHandler) EnregistrerPanne(w http.ResponseWriter, r *http.Request) {
	var req panne.EnregistrerRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.panneService.Enregistrer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "record panne", err)
		return
	}
	respondSuccess(w, http.StatusCreated, p)
}

// ListPannes
// GET /api/v1/pannes
func (h *MaintenanceHandler) ListPannes(w http.ResponseWriter, r *http.Request) {
	pannes, err := h.panneService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list pannes", err)
		return
	}
	respondSuccess(w, http.StatusOK, pannes)
}
