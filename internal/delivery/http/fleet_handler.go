package http

import (
	"context"
	"net/http"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/usecase/client"
	"github.com/frontandrew/motofleet/internal/usecase/moto"
)

// ClientService - opérations sur les clients utilisées par le handler
type ClientService interface {
	Gerer(ctx context.Context, req *client.GererRequest) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Delete(ctx context.Context, id int64) error
}

// MotoService - modèles et motos
type MotoService interface {
	GererModele(ctx context.Context, req *moto.ModeleRequest) (*domain.ModeleMoto, error)
	ListModeles(ctx context.Context) ([]*domain.ModeleMoto, error)
	DeleteModele(ctx context.Context, id int64) error
	Gerer(ctx context.Context, req *moto.GererRequest) (*domain.Moto, error)
	Get(ctx context.Context, id int64) (*domain.Moto, error)
	List(ctx context.Context) ([]*domain.Moto, error)
	Delete(ctx context.Context, id int64) error
}

// FleetHandler gère les clients, les modèles et les motos
type FleetHandler struct {
	clientService ClientService
	motoService   MotoService
	logger        logger.Logger
}

func NewFleetHandler(clientService ClientService, motoService MotoService, logger logger.Logger) *FleetHandler {
	return &FleetHandler{
		clientService: clientService,
		motoService:   motoService,
		logger:        logger,
	}
}

// GererClient crée un client, ou le met à jour si id est fourni
// POST /api/v1/clients
func (h *FleetHandler) GererClient(w http.ResponseWriter, r *http.Request) {
	var req client.GererRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.clientService.Gerer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "save client", err)
		return
	}

	respondSuccess(w, statusForWrite(req.ID), c)
}

// ListClients
// GET /api/v1/clients
func (h *FleetHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list clients", err)
		return
	}
	respondSuccess(w, http.StatusOK, clients)
}

// GetClient
// GET /api/v1/clients/{id}
func (h *FleetHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.clientService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, "get client", err)
		return
	}
	respondSuccess(w, http.StatusOK, c)
}

// DeleteClient
// DELETE /api/v1/clients/{id}
func (h *FleetHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "delete client", h.clientService.Delete)
}

// GererModele
// POST /api/v1/modeles
func (h *FleetHandler) GererModele(w http.ResponseWriter, r *http.Request) {
	var req moto.ModeleRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.motoService.GererModele(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "save modele", err)
		return
	}
	respondSuccess(w, statusForWrite(req.ID), m)
}

// ListModeles
// GET /api/v1/modeles
func (h *FleetHandler) ListModeles(w http.ResponseWriter, r *http.Request) {
	modeles, err := h.motoService.ListModeles(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list modeles", err)
		return
	}
	respondSuccess(w, http.StatusOK, modeles)
}

// DeleteModele
// DELETE /api/v1/modeles/{id}
func (h *FleetHandler) DeleteModele(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "delete modele", h.motoService.DeleteModele)
}

// GererMoto
// POST /api/v1/motos
func (h *FleetHandler) GererMoto(w http.ResponseWriter, r *http.Request) {
	var req moto.GererRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.motoService.Gerer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "save moto", err)
		return
	}
	respondSuccess(w, statusForWrite(req.ID), m)
}

// ListMotos
// GET /api/v1/motos
func (h *FleetHandler) ListMotos(w http.ResponseWriter, r *http.Request) {
	motos, err := h.motoService.List(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list motos", err)
		return
	}
	respondSuccess(w, http.StatusOK, motos)
}

// GetMoto
// GET /api/v1/motos/{id}
func (h *FleetHandler) GetMoto(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.motoService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, "get moto", err)
		return
	}
	respondSuccess(w, http.StatusOK, m)
}

// DeleteMoto
// DELETE /api/v1/motos/{id}
func (h *FleetHandler) DeleteMoto(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, "delete moto", h.motoService.Delete)
}

func (h *FleetHandler) deleteByID(w http.ResponseWriter, r *http.Request, action string, del func(context.Context, int64) error) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := del(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, action, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// statusForWrite: 201 à la création, 200 à la mise à jour
func statusForWrite(id int64) int {
	if id == 0 {
		return http.StatusCreated
	}
	return http.StatusOK
}
