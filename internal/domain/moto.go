package domain

import (
	"encoding/json"
	"time"
)

const entityMoto = "moto"

// Statuts usuels d'une moto
const (
	StatutDisponible  = "disponible"
	StatutEnEntretien = "en entretien"
	StatutEnEssai     = "en essai"
)

// MotoProps - données nécessaires à la création d'une moto
type MotoProps struct {
	ID                int64
	Modele            *ModeleMoto
	Client            *Client // optionnel
	NumeroSerie       string
	KilometrageActuel int
	DateAchat         time.Time
	Statut            string
}

// Moto - moto individuelle suivie par la flotte
// numeroSerie et dateAchat sont immuables après la création.
type Moto struct {
	id                int64
	modele            *ModeleMoto
	client            *Client
	numeroSerie       string
	kilometrageActuel int
	dateAchat         time.Time
	statut            string
}

func NewMoto(p MotoProps) (*Moto, error) {
	if p.Modele == nil {
		return nil, invalid(entityMoto, "modele", ErrEmpty)
	}
	if err := firstError(
		requireNonEmpty(entityMoto, "numeroSerie", p.NumeroSerie),
		requireNonNegative(entityMoto, "kilometrageActuel", p.KilometrageActuel),
		requireNonEmpty(entityMoto, "statut", p.Statut),
	); err != nil {
		return nil, err
	}
	return &Moto{
		id:                p.ID,
		modele:            p.Modele,
		client:            p.Client,
		numeroSerie:       p.NumeroSerie,
		kilometrageActuel: p.KilometrageActuel,
		dateAchat:         p.DateAchat,
		statut:            p.Statut,
	}, nil
}

func (m *Moto) ID() int64 { return m.id }

func (m *Moto) WithID(id int64) *Moto {
	cp := *m
	cp.id = id
	return &cp
}

func (m *Moto) Modele() *ModeleMoto    { return m.modele }
func (m *Moto) Client() *Client        { return m.client }
func (m *Moto) NumeroSerie() string    { return m.numeroSerie }
func (m *Moto) KilometrageActuel() int { return m.kilometrageActuel }
func (m *Moto) DateAchat() time.Time   { return m.dateAchat }
func (m *Moto) Statut() string         { return m.statut }

func (m *Moto) SetModele(v *ModeleMoto) error {
	if v == nil {
		return invalid(entityMoto, "modele", ErrEmpty)
	}
	m.modele = v
	return nil
}

// SetClient accepte nil: une moto peut ne plus être rattachée à un client
func (m *Moto) SetClient(v *Client) { m.client = v }

func (m *Moto) SetKilometrageActuel(v int) error {
	if err := requireNonNegative(entityMoto, "kilometrageActuel", v); err != nil {
		return err
	}
	m.kilometrageActuel = v
	return nil
}

func (m *Moto) SetStatut(v string) error {
	if err := requireNonEmpty(entityMoto, "statut", v); err != nil {
		return err
	}
	m.statut = v
	return nil
}

func (m *Moto) ToMap() map[string]any {
	out := map[string]any{
		"id":                m.id,
		"modele":            m.modele.ToMap(),
		"numeroSerie":       m.numeroSerie,
		"kilometrageActuel": m.kilometrageActuel,
		"dateAchat":         m.dateAchat,
		"statut":            m.statut,
	}
	if m.client != nil {
		out["client"] = m.client.ToMap()
	}
	return out
}

func (m *Moto) MarshalJSON() ([]byte, error) { return json.Marshal(m.ToMap()) }
