package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/infrastructure/export"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/usecase/commande"
	"github.com/frontandrew/motofleet/internal/usecase/stock"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// StockService - pièces, niveaux de stock et alertes
type StockService interface {
	GererPiece(ctx context.Context, req *stock.PieceRequest) (*domain.Piece, error)
	ListPieces(ctx context.Context) ([]*domain.Piece, error)
	Gerer(ctx context.Context, req *stock.GererRequest) (*domain.Stock, error)
	ListStocks(ctx context.Context) ([]*domain.Stock, error)
	GenererAlerteStockBas(ctx context.Context) ([]*domain.Notification, error)
}

// CommandeService - commandes de pièces
type CommandeService interface {
	Passer(ctx context.Context, req *commande.PasserRequest) (*domain.CommandePiece, error)
	Historique(ctx context.Context, req *commande.HistoriqueRequest) ([]*domain.CommandePiece, error)
}

// StockHandler gère les pièces, le stock et les commandes
type StockHandler struct {
	stockService    StockService
	commandeService CommandeService
	logger          logger.Logger
	now             func() time.Time
}

func NewStockHandler(stockService StockService, commandeService CommandeService, logger logger.Logger) *StockHandler {
	return &StockHandler{
		stockService:    stockService,
		commandeService: commandeService,
		logger:          logger,
		now:             time.Now,
	}
}

// GererPiece
// POST /api/v1/pieces
func (h *StockHandler) GererPiece(w http.ResponseWriter, r *http.Request) {
	var req stock.PieceRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.stockService.GererPiece(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "save piece", err)
		return
	}
	respondSuccess(w, statusForWrite(req.ID), p)
}

// ListPieces
// GET /api/v1/pieces
func (h *StockHandler) ListPieces(w http.ResponseWriter, r *http.Request) {
	pieces, err := h.stockService.ListPieces(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list pieces", err)
		return
	}
	respondSuccess(w, http.StatusOK, pieces)
}

// GererStock fixe la quantité (et le seuil) d'une pièce
// POST /api/v1/stocks
func (h *StockHandler) GererStock(w http.ResponseWriter, r *http.Request) {
	var req stock.GererRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s, err := h.stockService.Gerer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "save stock", err)
		return
	}
	respondSuccess(w, http.StatusOK, s)
}

// ListStocks
// GET /api/v1/stocks
func (h *StockHandler) ListStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := h.stockService.ListStocks(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list stocks", err)
		return
	}
	respondSuccess(w, http.StatusOK, stocks)
}

// GenererAlertes
// POST /api/v1/stocks/alertes
func (h *StockHandler) GenererAlertes(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.stockService.GenererAlerteStockBas(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "generate stock alerts", err)
		return
	}
	respondSuccess(w, http.StatusOK, notifications)
}

// PasserCommande
// POST /api/v1/commandes
func (h *StockHandler) PasserCommande(w http.ResponseWriter, r *http.Request) {
	var req commande.PasserRequest
	if err := decodeRequest(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := h.commandeService.Passer(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, "place commande", err)
		return
	}
	respondSuccess(w, http.StatusCreated, c)
}

// Historique renvoie les commandes, filtrées par ?piece_id=
// GET /api/v1/commandes
func (h *StockHandler) Historique(w http.ResponseWriter, r *http.Request) {
	commandes, ok := h.historique(w, r)
	if !ok {
		return
	}
	respondSuccess(w, http.StatusOK, commandes)
}

// ExportHistorique renvoie l'historique au format Excel
// GET /api/v1/commandes/export
func (h *StockHandler) ExportHistorique(w http.ResponseWriter, r *http.Request) {
	commandes, ok := h.historique(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.CommandesXLSX(&buf, commandes); err != nil {
		respondServiceError(w, h.logger, "export commandes", err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFilename(h.now())))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *StockHandler) historique(w http.ResponseWriter, r *http.Request) ([]*domain.CommandePiece, bool) {
	pieceID, err := queryID(r, "piece_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	commandes, err := h.commandeService.Historique(r.Context(), &commande.HistoriqueRequest{PieceID: pieceID})
	if err != nil {
		respondServiceError(w, h.logger, "get commandes", err)
		return nil, false
	}
	return commandes, true
}
