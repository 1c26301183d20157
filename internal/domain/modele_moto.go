package domain

import "encoding/json"

const entityModeleMoto = "modele moto"

// Intervalles d'entretien par défaut d'un nouveau modèle
const (
	DefaultIntervalleKm     = 10000
	DefaultIntervalleAnnees = 1
)

// ModeleMotoProps - données nécessaires à la création d'un modèle
type ModeleMotoProps struct {
	ID               int64
	Nom              string
	IntervalleKm     int
	IntervalleAnnees int
}

// ModeleMoto - modèle de moto et ses intervalles d'entretien préventif
type ModeleMoto struct {
	id               int64
	nom              string
	intervalleKm     int
	intervalleAnnees int
}

func NewModeleMoto(p ModeleMotoProps) (*ModeleMoto, error) {
	if err := firstError(
		requireNonEmpty(entityModeleMoto, "nom", p.Nom),
		requireNonNegative(entityModeleMoto, "intervalleKm", p.IntervalleKm),
		requireNonNegative(entityModeleMoto, "intervalleAnnees", p.IntervalleAnnees),
	); err != nil {
		return nil, err
	}
	return &ModeleMoto{
		id:               p.ID,
		nom:              p.Nom,
		intervalleKm:     p.IntervalleKm,
		intervalleAnnees: p.IntervalleAnnees,
	}, nil
}

func (m *ModeleMoto) ID() int64 { return m.id }

func (m *ModeleMoto) WithID(id int64) *ModeleMoto {
	cp := *m
	cp.id = id
	return &cp
}

func (m *ModeleMoto) Nom() string           { return m.nom }
func (m *ModeleMoto) IntervalleKm() int     { return m.intervalleKm }
func (m *ModeleMoto) IntervalleAnnees() int { return m.intervalleAnnees }

func (m *ModeleMoto) SetNom(v string) error {
	if err := requireNonEmpty(entityModeleMoto, "nom", v); err != nil {
		return err
	}
	m.nom = v
	return nil
}

func (m *ModeleMoto) SetIntervalleKm(v int) error {
	if err := requireNonNegative(entityModeleMoto, "intervalleKm", v); err != nil {
		return err
	}
	m.intervalleKm = v
	return nil
}

func (m *ModeleMoto) SetIntervalleAnnees(v int) error {
	if err := requireNonNegative(entityModeleMoto, "intervalleAnnees", v); err != nil {
		return err
	}
	m.intervalleAnnees = v
	return nil
}

func (m *ModeleMoto) ToMap() map[string]any {
	return map[string]any{
		"id":               m.id,
		"nom":              m.nom,
		"intervalleKm":     m.intervalleKm,
		"intervalleAnnees": m.intervalleAnnees,
	}
}

func (m *ModeleMoto) MarshalJSON() ([]byte, error) { return json.Marshal(m.ToMap()) }
