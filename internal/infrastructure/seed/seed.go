// Package seed charge un jeu de données initial décrit en YAML.
// Les entités sont reliées entre elles par des références symboliques (ref).
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/frontandrew/motofleet/internal/usecase/client"
	"github.com/frontandrew/motofleet/internal/usecase/conducteur"
	"github.com/frontandrew/motofleet/internal/usecase/moto"
	"github.com/frontandrew/motofleet/internal/usecase/stock"
)

// Fixture - contenu du fichier YAML
type Fixture struct {
	Clients     []Client     `yaml:"clients"`
	Modeles     []Modele     `yaml:"modeles"`
	Motos       []Moto       `yaml:"motos"`
	Pieces      []Piece      `yaml:"pieces"`
	Stocks      []Stock      `yaml:"stocks"`
	Conducteurs []Conducteur `yaml:"conducteurs"`
}

type Client struct {
	Ref         string `yaml:"ref"`
	Nom         string `yaml:"nom"`
	Type        string `yaml:"type"`
	ContactInfo string `yaml:"contact_info"`
}

type Modele struct {
	Ref              string `yaml:"ref"`
	Nom              string `yaml:"nom"`
	IntervalleKm     *int   `yaml:"intervalle_km"`
	IntervalleAnnees *int   `yaml:"intervalle_annees"`
}

type Moto struct {
	Modele            string     `yaml:"modele"`
	Client            string     `yaml:"client"`
	NumeroSerie       string     `yaml:"numero_serie"`
	KilometrageActuel *int       `yaml:"kilometrage_actuel"`
	DateAchat         *time.Time `yaml:"date_achat"`
	Statut            string     `yaml:"statut"`
}

type Piece struct {
	Ref         string  `yaml:"ref"`
	Nom         string  `yaml:"nom"`
	Description string  `yaml:"description"`
	Prix        float64 `yaml:"prix"`
}

type Stock struct {
	Piece       string `yaml:"piece"`
	Quantite    int    `yaml:"quantite"`
	SeuilAlerte *int   `yaml:"seuil_alerte"`
}

type Conducteur struct {
	Nom              string `yaml:"nom"`
	Permis           string `yaml:"permis"`
	ExperienceAnnees int    `yaml:"experience_annees"`
	ContactInfo      string `yaml:"contact_info"`
}

// Services - cas d'utilisation par lesquels passent les données chargées
type Services struct {
	Clients     *client.Service
	Motos       *moto.Service
	Stock       *stock.Service
	Conducteurs *conducteur.Service
}

// Summary - nombre d'entités créées par type
type Summary struct {
	Clients     int
	Modeles     int
	Motos       int
	Pieces      int
	Stocks      int
	Conducteurs int
}

func (s Summary) Fields() map[string]interface{} {
	return map[string]interface{}{
		"clients":     s.Clients,
		"modeles":     s.Modeles,
		"motos":       s.Motos,
		"pieces":      s.Pieces,
		"stocks":      s.Stocks,
		"conducteurs": s.Conducteurs,
	}
}

// Parse décode un document YAML
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// LoadFile lit, décode et applique le fichier
func LoadFile(ctx context.Context, path string, svc Services) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return Summary{}, err
	}
	return Apply(ctx, f, svc)
}

// Apply crée les entités dans l'ordre des dépendances. Une référence
// inconnue ou une entité invalide interrompt le chargement.
func Apply(ctx context.Context, f *Fixture, svc Services) (Summary, error) {
	var sum Summary
	clients := map[string]int64{}
	modeles := map[string]int64{}
	pieces := map[string]int64{}

	for _, c := range f.Clients {
		saved, err := svc.Clients.Gerer(ctx, &client.GererRequest{Nom: c.Nom, Type: c.Type, ContactInfo: c.ContactInfo})
		if err != nil {
			return sum, fmt.Errorf("client %q: %w", c.Nom, err)
		}
		remember(clients, c.Ref, saved.ID())
		sum.Clients++
	}

	for _, m := range f.Modeles {
		saved, err := svc.Motos.GererModele(ctx, &moto.ModeleRequest{
			Nom:              m.Nom,
			IntervalleKm:     m.IntervalleKm,
			IntervalleAnnees: m.IntervalleAnnees,
		})
		if err != nil {
			return sum, fmt.Errorf("modele %q: %w", m.Nom, err)
		}
		remember(modeles, m.Ref, saved.ID())
		sum.Modeles++
	}

	for _, m := range f.Motos {
		modeleID, err := resolve(modeles, "modele", m.Modele)
		if err != nil {
			return sum, fmt.Errorf("moto %q: %w", m.NumeroSerie, err)
		}
		var clientID int64
		if m.Client != "" {
			if clientID, err = resolve(clients, "client", m.Client); err != nil {
				return sum, fmt.Errorf("moto %q: %w", m.NumeroSerie, err)
			}
		}
		if _, err := svc.Motos.Gerer(ctx, &moto.GererRequest{
			ModeleID:          modeleID,
			ClientID:          clientID,
			NumeroSerie:       m.NumeroSerie,
			KilometrageActuel: m.KilometrageActuel,
			DateAchat:         m.DateAchat,
			Statut:            m.Statut,
		}); err != nil {
			return sum, fmt.Errorf("moto %q: %w", m.NumeroSerie, err)
		}
		sum.Motos++
	}

	for _, p := range f.Pieces {
		saved, err := svc.Stock.GererPiece(ctx, &stock.PieceRequest{Nom: p.Nom, Description: p.Description, Prix: p.Prix})
		if err != nil {
			return sum, fmt.Errorf("piece %q: %w", p.Nom, err)
		}
		remember(pieces, p.Ref, saved.ID())
		sum.Pieces++
	}

	for _, s := range f.Stocks {
		pieceID, err := resolve(pieces, "piece", s.Piece)
		if err != nil {
			return sum, fmt.Errorf("stock: %w", err)
		}
		if _, err := svc.Stock.Gerer(ctx, &stock.GererRequest{PieceID: pieceID, Quantite: s.Quantite, SeuilAlerte: s.SeuilAlerte}); err != nil {
			return sum, fmt.Errorf("stock %q: %w", s.Piece, err)
		}
		sum.Stocks++
	}

	for _, c := range f.Conducteurs {
		if _, err := svc.Conducteurs.Gerer(ctx, &conducteur.GererRequest{
			Nom:              c.Nom,
			Permis:           c.Permis,
			ExperienceAnnees: c.ExperienceAnnees,
			ContactInfo:      c.ContactInfo,
		}); err != nil {
			return sum, fmt.Errorf("conducteur %q: %w", c.Nom, err)
		}
		sum.Conducteurs++
	}

	return sum, nil
}

func remember(refs map[string]int64, ref string, id int64) {
	if ref != "" {
		refs[ref] = id
	}
}

func resolve(refs map[string]int64, kind, ref string) (int64, error) {
	id, ok := refs[ref]
	if !ok {
		return 0, fmt.Errorf("unknown %s reference %q", kind, ref)
	}
	return id, nil
}
