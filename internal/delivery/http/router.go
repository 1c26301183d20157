package http

import (
	"net/http"

	"github.com/frontandrew/motofleet/internal/delivery/http/middleware"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router regroupe les handlers de l'API
type Router struct {
	fleetHandler        *FleetHandler
	maintenanceHandler  *MaintenanceHandler
	stockHandler        *StockHandler
	essaiHandler        *EssaiHandler
	notificationHandler *NotificationHandler
	logger              logger.Logger
}

// NewRouter crée le routeur HTTP
func NewRouter(
	fleetHandler *FleetHandler,
	maintenanceHandler *MaintenanceHandler,
	stockHandler *StockHandler,
	essaiHandler *EssaiHandler,
	notificationHandler *NotificationHandler,
	logger logger.Logger,
) *Router {
	return &Router{
		fleetHandler:        fleetHandler,
		maintenanceHandler:  maintenanceHandler,
		stockHandler:        stockHandler,
		essaiHandler:        essaiHandler,
		notificationHandler: notificationHandler,
		logger:              logger,
	}
}

// Setup déclare toutes les routes
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.fleetHandler.ListClients)
			r.Post("/", rt.fleetHandler.GererClient)
			r.Get("/{id}", rt.fleetHandler.GetClient)
			r.Delete("/{id}", rt.fleetHandler.DeleteClient)
		})

		r.Route("/modeles", func(r chi.Router) {
			r.Get("/", rt.fleetHandler.ListModeles)
			r.Post("/", rt.fleetHandler.GererModele)
			r.Delete("/{id}", rt.fleetHandler.DeleteModele)
		})

		r.Route("/motos", func(r chi.Router) {
			r.Get("/", rt.fleetHandler.ListMotos)
			r.Post("/", rt.fleetHandler.GererMoto)
			r.Get("/{id}", rt.fleetHandler.GetMoto)
			r.Delete("/{id}", rt.fleetHandler.DeleteMoto)
		})

		r.Route("/entretiens", func(r chi.Router) {
			r.Get("/", rt.maintenanceHandler.ListEntretiens)
			r.Post("/", rt.maintenanceHandler.PlanifierEntretien)
			r.Post("/rappels", rt.maintenanceHandler.EnvoyerRappels)
			r.Get("/{id}", rt.maintenanceHandler.GetEntretien)
			r.Post("/{id}/realisation", rt.maintenanceHandler.EnregistrerEntretien)
		})

		r.Route("/pannes", func(r chi.Router) {
			r.Get("/", rt.maintenanceHandler.ListPannes)
			r.Post("/", rt.maintenanceHandler.EnregistrerPanne)
		})

		r.Route("/pieces", func(r chi.Router) {
			r.Get("/", rt.stockHandler.ListPieces)
			r.Post("/", rt.stockHandler.GererPiece)
		})

		r.Route("/stocks", func(r chi.Router) {
			r.Get("/", rt.stockHandler.ListStocks)
			r.Post("/", rt.stockHandler.GererStock)
			r.Post("/alertes", rt.stockHandler.GenererAlertes)
		})

		r.Route("/commandes", func(r chi.Router) {
			r.Get("/", rt.stockHandler.Historique)
			r.Post("/", rt.stockHandler.PasserCommande)
			r.Get("/export", rt.stockHandler.ExportHistorique)
		})

		r.Route("/conducteurs", func(r chi.Router) {
			r.Get("/", rt.essaiHandler.ListConducteurs)
			r.Post("/", rt.essaiHandler.GererConducteur)
			r.Delete("/{id}", rt.essaiHandler.DeleteConducteur)
		})

		r.Route("/essais", func(r chi.Router) {
			r.Get("/", rt.essaiHandler.ListEssais)
			r.Post("/", rt.essaiHandler.PlanifierEssai)
			r.Post("/{id}/realisation", rt.essaiHandler.EnregistrerEssai)
		})

		r.Route("/incidents", func(r chi.Router) {
			r.Get("/", rt.essaiHandler.ListIncidents)
			r.Post("/", rt.essaiHandler.EnregistrerIncident)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", rt.notificationHandler.Consulter)
			r.Post("/{id}/lu", rt.notificationHandler.MarquerCommeLue)
		})
	})

	return r
}
