package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/infrastructure/notifier"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/repository/memory"
)

func setup() (*memory.Registry, *notifier.Recorder, *Service) {
	reg := memory.NewRegistry()
	rec := &notifier.Recorder{}
	return reg, rec, NewService(reg.Pieces, reg.Stocks, reg.Notifications, rec, logger.NewNoop())
}

func intPtr(v int) *int { return &v }

func TestGererPiece(t *testing.T) {
	ctx := context.Background()
	_, _, service := setup()

	piece, err := service.GererPiece(ctx, &PieceRequest{Nom: "Filtre à huile", Prix: 12})
	require.NoError(t, err)
	assert.NotZero(t, piece.ID())

	updated, err := service.GererPiece(ctx, &PieceRequest{ID: piece.ID(), Nom: "Filtre à huile HF204", Prix: 14, Description: "origine"})
	require.NoError(t, err)
	assert.Equal(t, piece.ID(), updated.ID())
	assert.Equal(t, 14.0, updated.Prix())

	_, err = service.GererPiece(ctx, &PieceRequest{ID: piece.ID(), Nom: "", Prix: 1})
	assert.ErrorIs(t, err, domain.ErrEmpty)

	_, err = service.GererPiece(ctx, &PieceRequest{ID: 77, Nom: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pieces, err := service.ListPieces(ctx)
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	assert.Equal(t, "Filtre à huile HF204", pieces[0].Nom())
}

func TestGerer_CreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	reg, _, service := setup()
	piece, err := service.GererPiece(ctx, &PieceRequest{Nom: "Bougie", Prix: 8})
	require.NoError(t, err)

	created, err := service.Gerer(ctx, &GererRequest{PieceID: piece.ID(), Quantite: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, created.Quantite())
	assert.Equal(t, 0, created.SeuilAlerte())

	updated, err := service.Gerer(ctx, &GererRequest{PieceID: piece.ID(), Quantite: 4, SeuilAlerte: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, 3, updated.SeuilAlerte())

	// Sans seuil fourni, le seuil existant est conservé
	again, err := service.Gerer(ctx, &GererRequest{PieceID: piece.ID(), Quantite: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, again.Quantite())
	assert.Equal(t, 3, again.SeuilAlerte())

	assert.Equal(t, 1, reg.Stocks.Len())
}

func TestGerer_Errors(t *testing.T) {
	ctx := context.Background()
	reg, _, service := setup()
	piece, err := service.GererPiece(ctx, &PieceRequest{Nom: "Chaîne", Prix: 90})
	require.NoError(t, err)

	_, err = service.Gerer(ctx, &GererRequest{PieceID: 123, Quantite: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.Gerer(ctx, &GererRequest{PieceID: piece.ID(), Quantite: -1})
	assert.ErrorIs(t, err, domain.ErrNegative)
	assert.Equal(t, 0, reg.Stocks.Len())
}

func TestGenererAlerteStockBas(t *testing.T) {
	ctx := context.Background()
	reg, rec, service := setup()

	bas, err := service.GererPiece(ctx, &PieceRequest{Nom: "Plaquettes", Prix: 30})
	require.NoError(t, err)
	ok, err := service.GererPiece(ctx, &PieceRequest{Nom: "Pneu", Prix: 150})
	require.NoError(t, err)

	_, err = service.Gerer(ctx, &GererRequest{PieceID: bas.ID(), Quantite: 2, SeuilAlerte: intPtr(5)})
	require.NoError(t, err)
	_, err = service.Gerer(ctx, &GererRequest{PieceID: ok.ID(), Quantite: 10, SeuilAlerte: intPtr(5)})
	require.NoError(t, err)

	notifications, err := service.GenererAlerteStockBas(ctx)
	require.NoError(t, err)

	require.Len(t, notifications, 1)
	n := notifications[0]
	assert.Equal(t, bas.ID(), n.Piece().ID())
	assert.Nil(t, n.Entretien())
	assert.Equal(t, domain.GestionnaireNom, n.Client().Nom())
	assert.Equal(t, `Alerte Stock: La quantité de "Plaquettes" est basse (2). Seuil d'alerte: 5.`, n.Message())

	assert.Equal(t, 1, reg.Notifications.Len())
	assert.Equal(t, 0, reg.Clients.Len())
	assert.Len(t, rec.Sent, 1)
}

func TestGenererAlerteStockBas_EqualToThreshold(t *testing.T) {
	ctx := context.Background()
	_, _, service := setup()
	piece, err := service.GererPiece(ctx, &PieceRequest{Nom: "Levier", Prix: 25})
	require.NoError(t, err)
	_, err = service.Gerer(ctx, &GererRequest{PieceID: piece.ID(), Quantite: 0})
	require.NoError(t, err)

	notifications, err := service.GenererAlerteStockBas(ctx)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestGenererAlerteStockBas_UsesCurrentPieceName(t *testing.T) {
	ctx := context.Background()
	_, _, service := setup()
	piece, err := service.GererPiece(ctx, &PieceRequest{Nom: "Bougie", Prix: 8})
	require.NoError(t, err)
	_, err = service.Gerer(ctx, &GererRequest{PieceID: piece.ID(), Quantite: 1, SeuilAlerte: intPtr(3)})
	require.NoError(t, err)

	_, err = service.GererPiece(ctx, &PieceRequest{ID: piece.ID(), Nom: "Bougie NGK", Prix: 9})
	require.NoError(t, err)

	notifications, err := service.GenererAlerteStockBas(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Bougie NGK", notifications[0].Piece().Nom())
	assert.Contains(t, notifications[0].Message(), `"Bougie NGK"`)
}

func TestGenererAlerteStockBasNonNotifiees(t *testing.T) {
	ctx := context.Background()
	reg, rec, service := setup()
	piece, err := service.GererPiece(ctx, &PieceRequest{Nom: "Plaquettes", Prix: 30})
	require.NoError(t, err)
	_, err = service.Gerer(ctx, &GererRequest{PieceID: piece.ID(), Quantite: 2, SeuilAlerte: intPtr(5)})
	require.NoError(t, err)

	first, err := service.GenererAlerteStockBasNonNotifiees(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := service.GenererAlerteStockBasNonNotifiees(ctx)
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, 1, reg.Notifications.Len())
	assert.Len(t, rec.Sent, 1)

	// Une fois l'alerte lue, le stock toujours bas est de nouveau signalé
	lue := first[0].WithID(first[0].ID())
	lue.SetEstLu(true)
	_, err = reg.Notifications.Update(ctx, lue)
	require.NoError(t, err)

	third, err := service.GenererAlerteStockBasNonNotifiees(ctx)
	require.NoError(t, err)
	assert.Len(t, third, 1)
	assert.Equal(t, 2, reg.Notifications.Len())
}
