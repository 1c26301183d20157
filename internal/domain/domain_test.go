package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModele(t *testing.T) *ModeleMoto {
	t.Helper()
	m, err := NewModeleMoto(ModeleMotoProps{ID: 1, Nom: "Street Triple", IntervalleKm: 10000, IntervalleAnnees: 1})
	require.NoError(t, err)
	return m
}

func testMoto(t *testing.T, client *Client) *Moto {
	t.Helper()
	m, err := NewMoto(MotoProps{
		ID:                1,
		Modele:            testModele(t),
		Client:            client,
		NumeroSerie:       "SMT-001",
		KilometrageActuel: 5000,
		DateAchat:         time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Statut:            StatutDisponible,
	})
	require.NoError(t, err)
	return m
}

// TestConstructors_RejectInvalid vérifie les invariants de tous les constructeurs
func TestConstructors_RejectInvalid(t *testing.T) {
	now := time.Now()
	modele := testModele(t)
	moto := testMoto(t, nil)
	piece, err := NewPiece(PieceProps{Nom: "Filtre à huile", Prix: 12.5})
	require.NoError(t, err)
	conducteur, err := NewConducteur(ConducteurProps{Nom: "Alice", Permis: "A", ExperienceAnnees: 3})
	require.NoError(t, err)
	negatif := -1

	tests := []struct {
		name    string
		build   func() error
		wantErr error
	}{
		{"client nom vide", func() error { _, err := NewClient(ClientProps{Nom: "  ", Type: "pro"}); return err }, ErrEmpty},
		{"client type vide", func() error { _, err := NewClient(ClientProps{Nom: "Dupont", Type: ""}); return err }, ErrEmpty},
		{"conducteur permis vide", func() error {
			_, err := NewConducteur(ConducteurProps{Nom: "Bob", Permis: ""})
			return err
		}, ErrEmpty},
		{"conducteur experience négative", func() error {
			_, err := NewConducteur(ConducteurProps{Nom: "Bob", Permis: "A", ExperienceAnnees: -2})
			return err
		}, ErrNegative},
		{"modele intervalle négatif", func() error {
			_, err := NewModeleMoto(ModeleMotoProps{Nom: "Tiger", IntervalleKm: -5})
			return err
		}, ErrNegative},
		{"moto numero de série vide", func() error {
			_, err := NewMoto(MotoProps{Modele: modele, NumeroSerie: "", Statut: "disponible"})
			return err
		}, ErrEmpty},
		{"moto kilométrage négatif", func() error {
			_, err := NewMoto(MotoProps{Modele: modele, NumeroSerie: "X", KilometrageActuel: -1, Statut: "disponible"})
			return err
		}, ErrNegative},
		{"moto statut vide", func() error {
			_, err := NewMoto(MotoProps{Modele: modele, NumeroSerie: "X", Statut: " "})
			return err
		}, ErrEmpty},
		{"piece prix négatif", func() error { _, err := NewPiece(PieceProps{Nom: "Pneu", Prix: -3}); return err }, ErrNegative},
		{"stock quantité négative", func() error {
			_, err := NewStock(StockProps{Piece: piece, Quantite: -1})
			return err
		}, ErrNegative},
		{"stock seuil négatif", func() error {
			_, err := NewStock(StockProps{Piece: piece, Quantite: 1, SeuilAlerte: -1})
			return err
		}, ErrNegative},
		{"commande quantité nulle", func() error {
			_, err := NewCommandePiece(CommandePieceProps{Piece: piece, DateCommande: now, Quantite: 0, Statut: "en cours"})
			return err
		}, ErrNotPositive},
		{"commande délai négatif", func() error {
			_, err := NewCommandePiece(CommandePieceProps{Piece: piece, DateCommande: now, Quantite: 1, DelaiLivraison: &negatif, Statut: "en cours"})
			return err
		}, ErrNegative},
		{"commande date absente", func() error {
			_, err := NewCommandePiece(CommandePieceProps{Piece: piece, Quantite: 1, Statut: "en cours"})
			return err
		}, ErrInvalidDate},
		{"entretien type vide", func() error {
			_, err := NewEntretien(EntretienProps{Moto: moto, TypeEntretien: ""})
			return err
		}, ErrEmpty},
		{"entretien coût négatif", func() error {
			_, err := NewEntretien(EntretienProps{Moto: moto, TypeEntretien: "curatif", Cout: -10})
			return err
		}, ErrNegative},
		{"essai fin avant début", func() error {
			fin := now.Add(-time.Hour)
			_, err := NewEssai(EssaiProps{Moto: moto, Conducteur: conducteur, DateDebut: now, DateFin: &fin})
			return err
		}, ErrInvalidDateRange},
		{"essai kilométrage négatif", func() error {
			_, err := NewEssai(EssaiProps{Moto: moto, Conducteur: conducteur, DateDebut: now, KilometrageParcouru: -1})
			return err
		}, ErrNegative},
		{"panne sans association", func() error {
			_, err := NewPanne(PanneProps{DateEvent: now, Description: "moteur", Cout: 10})
			return err
		}, ErrNoAssociation},
		{"panne description vide", func() error {
			_, err := NewPanne(PanneProps{Moto: moto, DateEvent: now, Description: ""})
			return err
		}, ErrEmpty},
		{"incident sans association", func() error {
			_, err := NewIncident(IncidentProps{DateIncident: now, Description: "chute", Severite: "faible"})
			return err
		}, ErrNoAssociation},
		{"incident sévérité vide", func() error {
			_, err := NewIncident(IncidentProps{Moto: moto, DateIncident: now, Description: "chute", Severite: ""})
			return err
		}, ErrEmpty},
		{"notification message vide", func() error {
			_, err := NewNotification(NotificationProps{Client: NewGestionnaire(), Message: " ", DateNotification: now})
			return err
		}, ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestMoto_GettersAndSetters(t *testing.T) {
	client, err := NewClient(ClientProps{ID: 4, Nom: "Dupont", Type: "particulier"})
	require.NoError(t, err)
	moto := testMoto(t, client)

	assert.Equal(t, int64(1), moto.ID())
	assert.Equal(t, "SMT-001", moto.NumeroSerie())
	assert.Equal(t, 5000, moto.KilometrageActuel())
	assert.Equal(t, client, moto.Client())

	// Un setter invalide ne modifie pas l'entité
	assert.ErrorIs(t, moto.SetKilometrageActuel(-10), ErrNegative)
	assert.Equal(t, 5000, moto.KilometrageActuel())
	assert.ErrorIs(t, moto.SetStatut(""), ErrEmpty)
	assert.Equal(t, StatutDisponible, moto.Statut())

	require.NoError(t, moto.SetKilometrageActuel(6200))
	require.NoError(t, moto.SetStatut(StatutEnEntretien))
	assert.Equal(t, 6200, moto.KilometrageActuel())
	assert.Equal(t, StatutEnEntretien, moto.Statut())
}

func TestWithID_ReturnsCopy(t *testing.T) {
	piece, err := NewPiece(PieceProps{Nom: "Chaîne", Prix: 80})
	require.NoError(t, err)

	stored := piece.WithID(9)
	assert.Equal(t, int64(0), piece.ID())
	assert.Equal(t, int64(9), stored.ID())
	assert.Equal(t, piece.Nom(), stored.Nom())
}

func TestPanne_SetterKeepsAssociation(t *testing.T) {
	moto := testMoto(t, nil)
	panne, err := NewPanne(PanneProps{Moto: moto, DateEvent: time.Now(), Description: "embrayage", Cout: 150, SousGarantie: true})
	require.NoError(t, err)

	assert.ErrorIs(t, panne.SetMoto(nil), ErrNoAssociation)
	assert.Equal(t, moto, panne.MotoConcernee())
	assert.True(t, panne.SousGarantie())
}

func TestIncident_SetterKeepsAssociation(t *testing.T) {
	moto := testMoto(t, nil)
	conducteur, err := NewConducteur(ConducteurProps{Nom: "Alice", Permis: "A2"})
	require.NoError(t, err)

	incident, err := NewIncident(IncidentProps{Moto: moto, Conducteur: conducteur, DateIncident: time.Now(), Description: "chute", Severite: SeveriteFaible})
	require.NoError(t, err)

	require.NoError(t, incident.SetMoto(nil))
	assert.ErrorIs(t, incident.SetConducteur(nil), ErrNoAssociation)
}

func TestEntretien_EstDu(t *testing.T) {
	moto := testMoto(t, nil)
	now := time.Now()
	passe := now.Add(-24 * time.Hour)
	futur := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		planif   *time.Time
		realisee *time.Time
		want     bool
	}{
		{"passé non réalisé", &passe, nil, true},
		{"passé réalisé", &passe, &now, false},
		{"futur", &futur, nil, false},
		{"sans date", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntretien(EntretienProps{Moto: moto, TypeEntretien: EntretienPreventif, DatePlanifiee: tt.planif, DateRealisee: tt.realisee})
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.EstDu(now))
		})
	}
}

func TestCommandePiece_DateLivraisonPrevue(t *testing.T) {
	piece, err := NewPiece(PieceProps{Nom: "Plaquettes", Prix: 30})
	require.NoError(t, err)
	delai := 5
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	c, err := NewCommandePiece(CommandePieceProps{Piece: piece, DateCommande: date, Quantite: 2, Cout: 60, DelaiLivraison: &delai, Statut: CommandeEnCours})
	require.NoError(t, err)

	livraison, ok := c.DateLivraisonPrevue()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), livraison)
}

func TestSerializable_NestsReferences(t *testing.T) {
	client, err := NewClient(ClientProps{ID: 2, Nom: "Moto Club", Type: "entreprise", ContactInfo: "club@example.com"})
	require.NoError(t, err)
	moto := testMoto(t, client)

	m := moto.ToMap()
	assert.Equal(t, "SMT-001", m["numeroSerie"])
	assert.Equal(t, "Street Triple", m["modele"].(map[string]any)["nom"])
	assert.Equal(t, "Moto Club", m["client"].(map[string]any)["nom"])

	raw, err := json.Marshal(moto)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"contactInfo":"club@example.com"`)

	sansClient := testMoto(t, nil).ToMap()
	_, ok := sansClient["client"]
	assert.False(t, ok)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("moto", 42)
	assert.EqualError(t, err, "moto with id 42 not found")
	assert.ErrorIs(t, err, ErrNotFound)
}
