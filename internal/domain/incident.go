package domain

import (
	"encoding/json"
	"time"
)

const entityIncident = "incident"

// Niveaux de sévérité proposés à la saisie
const (
	SeveriteFaible  = "faible"
	SeveriteMoyenne = "moyenne"
	SeveriteElevee  = "élevée"
)

// IncidentProps - données nécessaires à l'enregistrement d'un incident
type IncidentProps struct {
	ID           int64
	Essai        *Essai
	Conducteur   *Conducteur
	Moto         *Moto
	DateIncident time.Time
	Description  string
	Severite     string
}

// Incident - accident, infraction ou autre événement indésirable
// rattaché à au moins un essai, un conducteur ou une moto.
type Incident struct {
	id           int64
	essai        *Essai
	conducteur   *Conducteur
	moto         *Moto
	dateIncident time.Time
	description  string
	severite     string
}

func NewIncident(p IncidentProps) (*Incident, error) {
	if err := firstError(
		requireDate(entityIncident, "dateIncident", p.DateIncident),
		requireNonEmpty(entityIncident, "description", p.Description),
		requireNonEmpty(entityIncident, "severite", p.Severite),
	); err != nil {
		return nil, err
	}
	if p.Essai == nil && p.Conducteur == nil && p.Moto == nil {
		return nil, invalid(entityIncident, "essai/conducteur/moto", ErrNoAssociation)
	}
	return &Incident{
		id:           p.ID,
		essai:        p.Essai,
		conducteur:   p.Conducteur,
		moto:         p.Moto,
		dateIncident: p.DateIncident,
		description:  p.Description,
		severite:     p.Severite,
	}, nil
}

func (i *Incident) ID() int64 { return i.id }

func (i *Incident) WithID(id int64) *Incident {
	cp := *i
	cp.id = id
	return &cp
}

func (i *Incident) Essai() *Essai           { return i.essai }
func (i *Incident) Conducteur() *Conducteur { return i.conducteur }
func (i *Incident) Moto() *Moto             { return i.moto }
func (i *Incident) DateIncident() time.Time { return i.dateIncident }
func (i *Incident) Description() string     { return i.description }
func (i *Incident) Severite() string        { return i.severite }

func (i *Incident) hasOtherThan(field string) bool {
	switch field {
	case "essai":
		return i.conducteur != nil || i.moto != nil
	case "conducteur":
		return i.essai != nil || i.moto != nil
	default:
		return i.essai != nil || i.conducteur != nil
	}
}

func (i *Incident) SetEssai(v *Essai) error {
	if v == nil && !i.hasOtherThan("essai") {
		return invalid(entityIncident, "essai", ErrNoAssociation)
	}
	i.essai = v
	return nil
}

func (i *Incident) SetConducteur(v *Conducteur) error {
	if v == nil && !i.hasOtherThan("conducteur") {
		return invalid(entityIncident, "conducteur", ErrNoAssociation)
	}
	i.conducteur = v
	return nil
}

func (i *Incident) SetMoto(v *Moto) error {
	if v == nil && !i.hasOtherThan("moto") {
		return invalid(entityIncident, "moto", ErrNoAssociation)
	}
	i.moto = v
	return nil
}

func (i *Incident) SetDateIncident(v time.Time) error {
	if err := requireDate(entityIncident, "dateIncident", v); err != nil {
		return err
	}
	i.dateIncident = v
	return nil
}

func (i *Incident) SetDescription(v string) error {
	if err := requireNonEmpty(entityIncident, "description", v); err != nil {
		return err
	}
	i.description = v
	return nil
}

func (i *Incident) SetSeverite(v string) error {
	if err := requireNonEmpty(entityIncident, "severite", v); err != nil {
		return err
	}
	i.severite = v
	return nil
}

func (i *Incident) ToMap() map[string]any {
	m := map[string]any{
		"id":           i.id,
		"dateIncident": i.dateIncident,
		"description":  i.description,
		"severite":     i.severite,
	}
	if i.essai != nil {
		m["essai"] = i.essai.ToMap()
	}
	if i.conducteur != nil {
		m["conducteur"] = i.conducteur.ToMap()
	}
	if i.moto != nil {
		m["moto"] = i.moto.ToMap()
	}
	return m
}

func (i *Incident) MarshalJSON() ([]byte, error) { return json.Marshal(i.ToMap()) }
