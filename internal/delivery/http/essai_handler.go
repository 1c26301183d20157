package http

import (
	"context"
	"net/http"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/usecase/conducteur"
	"github.com/frontandrew/motofleet/internal/usecase/essai"
	"github.com/frontandrew/motofleet/internal/usecase/incident"
)

// ConducteurService - profils des conducteurs
type ConducteurService interface {
	Gerer(ctx context.Context, req *conducteur.GererRequest) (*domain.Conducteur, error)
	List(ctx context.Context) ([]*domain.Conducteur, error)
	Delete(ctx context.Context, id int64) error
}

// EssaiService - essais routiers
type EssaiService interface {
	Planifier(ctx context.Context, req *essai.PlanifierRequest) (*domain.Essai, error)
	Enregistrer(ctx context.Context, req *essai.EnregistrerRequest) (*domain.Essai, error)
	List(ctx context.Context) ([]*domain.Essai, error)
}

// IncidentService - incidents survenus pendant les essais
type IncidentService interface {
	Enregistrer(ctx context.Context, req *incident.EnregistrerRequest) (*domain.Incident, error)
	List(ctx context.Context) ([]*domain.Incident, error)
}

// EssaiHandler gère les conducteurs, les essais et les incidents
type EssaiHandler struct {
	conducteurService ConducteurService
	essaiService      EssaiService
	incidentService   IncidentService
	logger            logger.Logger
}

func NewEssaiHandler(
	conducteurService ConducteurService,
	essaiService EssaiService,
	incidentService IncidentService,
	logger logger.Logger,
) *EssaiHandler {
	return &EssaiHandler{
		conducteurService: conducteurService,
		essaiService:      essaiService,
		incidentService:   incidentService,
		logger:            logger,
	}
}

// GererConducteur
// POST /api/v1/conducteurs
func (h *EssaiHandler) GererConducteur(w http.ResponseWriter, r *http.Request) {
	var req conducteur.GererRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.conducteurService.Gerer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "save conducteur", err)
		return
	}
	respondSuccess(w, statusForWrite(req.ID), c)
}

// ListConducteurs
// GET /api/v1/conducteurs
func (h *EssaiHandler) ListConducteurs(w http.ResponseWriter, r *http.Request) {
	conducteurs, err := h.conducteurService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list conducteurs", err)
		return
	}
	respondSuccess(w, http.StatusOK, conducteurs)
}

// DeleteConducteur
// DELETE /api/v1/conducteurs/{id}
func (h *EssaiHandler) DeleteConducteur(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.conducteurService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, "delete conducteur", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// PlanifierEssai
// POST /api/v1/essais
func (h *EssaiHandler) PlanifierEssai(w http.ResponseWriter, r *http.Request) {
	var req essai.PlanifierRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := h.essaiService.Planifier(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "plan essai", err)
		return
	}
	respondSuccess(w, http.StatusCreated, e)
}

// EnregistrerEssai
// POST /api/v1/essais/{id}/realisation
func (h *EssaiHandler) EnregistrerEssai(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := essai.EnregistrerRequest{EssaiID: id}
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.EssaiID = id

	e, err := h.essaiService.Enregistrer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "record essai", err)
		return
	}
	respondSuccess(w, http.StatusOK, e)
}

// ListEssais
// GET /api/v1/essais
func (h *EssaiHandler) ListEssais(w http.ResponseWriter, r *http.Request) {
	essais, err := h.essaiService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list essais", err)
		return
	}
	respondSuccess(w, http.StatusOK, essais)
}

// EnregistrerIncident
// POST /api/v1/incidents
func (h *EssaiHandler) EnregistrerIncident(w http.ResponseWriter, r *http.Request) {
	var req incident.EnregistrerRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	i, err := h.incidentService.Enregistrer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "record incident", err)
		return
	}
	respondSuccess(w, http.StatusCreated, i)
}

// ListIncidents
// GET /api/v1/incidents
func (h *EssaiHandler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.incidentService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list incidents", err)
		return
	}
	respondSuccess(w, http.StatusOK, incidents)
}
