package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/frontandrew/motofleet/internal/domain"
)

func commandes(t *testing.T) []*domain.CommandePiece {
	t.Helper()
	piece, err := domain.NewPiece(domain.PieceProps{ID: 1, Nom: "Pneu arrière", Prix: 140})
	require.NoError(t, err)
	delai := 3

	avecDelai, err := domain.NewCommandePiece(domain.CommandePieceProps{
		ID: 1, Piece: piece, DateCommande: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Quantite: 2, Cout: 280, DelaiLivraison: &delai, Statut: domain.CommandeEnCours,
	})
	require.NoError(t, err)
	sansDelai, err := domain.NewCommandePiece(domain.CommandePieceProps{
		ID: 2, Piece: piece, DateCommande: time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC),
		Quantite: 1, Cout: 140, Statut: domain.CommandeLivree,
	})
	require.NoError(t, err)
	return []*domain.CommandePiece{avecDelai, sansDelai}
}

func TestCommandesXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CommandesXLSX(&buf, commandes(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetCommandes)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, commandeHeaders, rows[0])
	assert.Equal(t, "Pneu arrière", rows[1][1])
	assert.Equal(t, "2024-04-01", rows[1][2])
	assert.Equal(t, "2024-04-04", rows[1][6])
	assert.Equal(t, "livrée", rows[2][7])
	assert.Equal(t, "", rows[2][5])

	assert.Equal(t, []string{SheetCommandes}, f.GetSheetList())
}

func TestSaveCommandesXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", DefaultFilename(time.Date(2024, 4, 9, 14, 5, 0, 0, time.UTC)))
	require.NoError(t, SaveCommandesXLSX(path, commandes(t)))
	assert.Equal(t, "commandes_20240409_140500.xlsx", filepath.Base(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(SheetCommandes, "H3")
	require.NoError(t, err)
	assert.Equal(t, "livrée", value)
}
