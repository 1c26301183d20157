package memory

import (
	"context"
	"testing"
	"time"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stockDate = time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

func newPiece(t *testing.T, nom string) *domain.Piece {
	t.Helper()
	p, err := domain.NewPiece(domain.PieceProps{Nom: nom, Prix: 10})
	require.NoError(t, err)
	return p
}

func TestStore_SaveAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*domain.Piece]("piece")

	var last int64
	for _, nom := range []string{"Filtre", "Bougie", "Chaîne"} {
		saved, err := store.Save(ctx, newPiece(t, nom))
		require.NoError(t, err)
		assert.Greater(t, saved.ID(), last)
		last = saved.ID()

		found, err := store.FindByID(ctx, saved.ID())
		require.NoError(t, err)
		assert.Equal(t, nom, found.Nom())
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "Filtre", all[0].Nom())
}

func TestStore_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*domain.Piece]("piece")

	first, err := store.Save(ctx, newPiece(t, "A"))
	require.NoError(t, err)
	ok, err := store.Delete(ctx, first.ID())
	require.NoError(t, err)
	require.True(t, ok)

	second, err := store.Save(ctx, newPiece(t, "B"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestStore_SaveWithExplicitID(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*domain.Piece]("piece")

	_, err := store.Save(ctx, newPiece(t, "A").WithID(10))
	require.NoError(t, err)

	next, err := store.Save(ctx, newPiece(t, "B"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), next.ID())

	// Un identifiant existant écrase l'entrée sans la dupliquer
	_, err = store.Save(ctx, newPiece(t, "A2").WithID(10))
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	found, err := store.FindByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "A2", found.Nom())
}

func TestStore_FindByID_Missing(t *testing.T) {
	store := NewStore[*domain.Piece]("piece")

	found, err := store.FindByID(context.Background(), 42)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "piece with id 42 not found")
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*domain.Piece]("piece")

	tests := []struct {
		name    string
		piece   func() *domain.Piece
		wantErr error
	}{
		{"sans identifiant", func() *domain.Piece { return newPiece(t, "X") }, domain.ErrMissingID},
		{"identifiant inconnu", func() *domain.Piece { return newPiece(t, "X").WithID(99) }, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Update(ctx, tt.piece())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, store.Len())
		})
	}

	saved, err := store.Save(ctx, newPiece(t, "Pneu"))
	require.NoError(t, err)
	require.NoError(t, saved.SetPrix(99))
	_, err = store.Update(ctx, saved)
	require.NoError(t, err)

	found, err := store.FindByID(ctx, saved.ID())
	require.NoError(t, err)
	assert.Equal(t, 99.0, found.Prix())
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewStore[*domain.Piece]("piece")
	saved, err := store.Save(ctx, newPiece(t, "Levier"))
	require.NoError(t, err)

	ok, err := store.Delete(ctx, saved.ID())
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = store.FindByID(ctx, saved.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err = store.Delete(ctx, saved.ID())
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFindByPieceID(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	filtre, err := reg.Pieces.Save(ctx, newPiece(t, "Filtre"))
	require.NoError(t, err)
	bougie, err := reg.Pieces.Save(ctx, newPiece(t, "Bougie"))
	require.NoError(t, err)

	stock, err := domain.NewStock(domain.StockProps{Piece: filtre, Quantite: 4, SeuilAlerte: 2})
	require.NoError(t, err)
	_, err = reg.Stocks.Save(ctx, stock)
	require.NoError(t, err)

	found, err := reg.Stocks.FindByPieceID(ctx, filtre.ID())
	require.NoError(t, err)
	assert.Equal(t, 4, found.Quantite())

	_, err = reg.Stocks.FindByPieceID(ctx, bougie.ID())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for _, p := range []*domain.Piece{filtre, bougie, filtre} {
		c, err := domain.NewCommandePiece(domain.CommandePieceProps{
			Piece:        p,
			DateCommande: stockDate,
			Quantite:     1,
			Statut:       domain.CommandeEnCours,
		})
		require.NoError(t, err)
		_, err = reg.Commandes.Save(ctx, c)
		require.NoError(t, err)
	}

	commandes, err := reg.Commandes.FindByPieceID(ctx, filtre.ID())
	require.NoError(t, err)
	assert.Len(t, commandes, 2)

	aucune, err := reg.Commandes.FindByPieceID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, aucune)
}

func TestNotificationRepository_FindUnread(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	filtre, err := reg.Pieces.Save(ctx, newPiece(t, "Filtre"))
	require.NoError(t, err)

	save := func(piece *domain.Piece, lu bool) *domain.Notification {
		n, err := domain.NewNotification(domain.NotificationProps{
			Piece:            piece,
			Client:           domain.NewGestionnaire(),
			Message:          "stock bas",
			DateNotification: stockDate,
			EstLu:            lu,
		})
		require.NoError(t, err)
		n, err = reg.Notifications.Save(ctx, n)
		require.NoError(t, err)
		return n
	}

	nonLue := save(filtre, false)
	save(filtre, true)
	save(nil, false)

	found, err := reg.Notifications.FindUnreadByPieceID(ctx, filtre.ID())
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, nonLue.ID(), found[0].ID())

	found, err = reg.Notifications.FindUnreadByEntretienID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, found)
}
