package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/pkg/config"
	"github.com/frontandrew/motofleet/internal/pkg/logger"
	"github.com/frontandrew/motofleet/internal/usecase/client"
	"github.com/frontandrew/motofleet/internal/usecase/entretien"
	"github.com/frontandrew/motofleet/internal/usecase/moto"
)

const seedYAML = `
modeles:
  - ref: mt07
    nom: MT-07
motos:
  - modele: mt07
    numero_serie: MT7-0001
    statut: disponible
pieces:
  - ref: bougie
    nom: Bougie
    prix: 8
stocks:
  - piece: bougie
    quantite: 1
    seuil_alerte: 3
`

func TestNew_WithoutSeed(t *testing.T) {
	a, err := New(context.Background(), &config.Config{}, logger.NewNoop())
	require.NoError(t, err)
	defer a.Close()

	motos, err := a.Services.Motos.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, motos)
}

func TestNew_LoadsSeedAndDispatches(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	a, err := New(ctx, &config.Config{SeedFile: path}, logger.NewNoop())
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 1, a.Registry.Motos.Len())
	assert.Equal(t, 1, a.Registry.Stocks.Len())

	alerts, err := a.Services.Stock.GenererAlerteStockBas(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, `Alerte Stock: La quantité de "Bougie" est basse (1). Seuil d'alerte: 3.`, alerts[0].Message())

	unread, err := a.Services.Notifications.NombreNonLues(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestNew_InvalidSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("motos:\n  - modele: inconnu\n    numero_serie: X\n    statut: disponible\n"), 0o600))

	_, err := New(context.Background(), &config.Config{SeedFile: path}, logger.NewNoop())
	assert.Error(t, err)
}

func TestRappel_FollowsMotoOwnerChange(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, &config.Config{}, logger.NewNoop())
	require.NoError(t, err)
	defer a.Close()
	svc := a.Services

	ancien, err := svc.Clients.Gerer(ctx, &client.GererRequest{Nom: "Ancien", Type: "particulier"})
	require.NoError(t, err)
	nouveau, err := svc.Clients.Gerer(ctx, &client.GererRequest{Nom: "Nouveau", Type: "particulier"})
	require.NoError(t, err)
	modele, err := svc.Motos.GererModele(ctx, &moto.ModeleRequest{Nom: "MT-07"})
	require.NoError(t, err)

	m, err := svc.Motos.Gerer(ctx, &moto.GererRequest{
		ModeleID:    modele.ID(),
		ClientID:    ancien.ID(),
		NumeroSerie: "MT7-0042",
		Statut:      domain.StatutDisponible,
	})
	require.NoError(t, err)

	date := time.Now().AddDate(0, 0, -2)
	km := 3000
	_, err = svc.Entretiens.Planifier(ctx, &entretien.PlanifierRequest{
		MotoID:        m.ID(),
		TypeEntretien: domain.EntretienCuratif,
		DatePlanifiee: &date,
		Kilometrage:   &km,
	})
	require.NoError(t, err)

	_, err = svc.Motos.Gerer(ctx, &moto.GererRequest{
		ID:          m.ID(),
		ModeleID:    modele.ID(),
		ClientID:    nouveau.ID(),
		NumeroSerie: m.NumeroSerie(),
		Statut:      domain.StatutDisponible,
	})
	require.NoError(t, err)

	rappels, err := svc.Entretiens.EnvoyerRappels(ctx)
	require.NoError(t, err)
	require.Len(t, rappels, 1)
	assert.Equal(t, "Nouveau", rappels[0].Client().Nom())
}
