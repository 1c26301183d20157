package domain

import (
	"encoding/json"
	"time"
)

const entityPanne = "panne"

// PanneProps - données nécessaires à l'enregistrement d'une panne
type PanneProps struct {
	ID           int64
	Moto         *Moto      // optionnel
	Entretien    *Entretien // optionnel
	DateEvent    time.Time
	Description  string
	Cout         float64
	SousGarantie bool
}

// Panne - panne liée directement à une moto ou constatée lors d'un entretien
// Au moins une des deux associations doit être présente.
type Panne struct {
	id           int64
	moto         *Moto
	entretien    *Entretien
	dateEvent    time.Time
	description  string
	cout         float64
	sousGarantie bool
}

func NewPanne(p PanneProps) (*Panne, error) {
	if err := firstError(
		requireDate(entityPanne, "dateEvent", p.DateEvent),
		requireNonEmpty(entityPanne, "description", p.Description),
		requireNonNegative(entityPanne, "cout", p.Cout),
	); err != nil {
		return nil, err
	}
	if p.Moto == nil && p.Entretien == nil {
		return nil, invalid(entityPanne, "moto/entretien", ErrNoAssociation)
	}
	return &Panne{
		id:           p.ID,
		moto:         p.Moto,
		entretien:    p.Entretien,
		dateEvent:    p.DateEvent,
		description:  p.Description,
		cout:         p.Cout,
		sousGarantie: p.SousGarantie,
	}, nil
}

func (p *Panne) ID() int64 { return p.id }

func (p *Panne) WithID(id int64) *Panne {
	cp := *p
	cp.id = id
	return &cp
}

func (p *Panne) Moto() *Moto           { return p.moto }
func (p *Panne) Entretien() *Entretien { return p.entretien }
func (p *Panne) DateEvent() time.Time  { return p.dateEvent }
func (p *Panne) Description() string   { return p.description }
func (p *Panne) Cout() float64         { return p.cout }
func (p *Panne) SousGarantie() bool    { return p.sousGarantie }

// MotoConcernee renvoie la moto directe, ou à défaut celle de l'entretien
func (p *Panne) MotoConcernee() *Moto {
	if p.moto != nil {
		return p.moto
	}
	return p.entretien.Moto()
}

func (p *Panne) SetMoto(v *Moto) error {
	if v == nil && p.entretien == nil {
		return invalid(entityPanne, "moto", ErrNoAssociation)
	}
	p.moto = v
	return nil
}

func (p *Panne) SetEntretien(v *Entretien) error {
	if v == nil && p.moto == nil {
		return invalid(entityPanne, "entretien", ErrNoAssociation)
	}
	p.entretien = v
	return nil
}

func (p *Panne) SetDateEvent(v time.Time) error {
	if err := requireDate(entityPanne, "dateEvent", v); err != nil {
		return err
	}
	p.dateEvent = v
	return nil
}

func (p *Panne) SetDescription(v string) error {
	if err := requireNonEmpty(entityPanne, "description", v); err != nil {
		return err
	}
	p.description = v
	return nil
}

func (p *Panne) SetCout(v float64) error {
	if err := requireNonNegative(entityPanne, "cout", v); err != nil {
		return err
	}
	p.cout = v
	return nil
}

func (p *Panne) SetSousGarantie(v bool) { p.sousGarantie = v }

func (p *Panne) ToMap() map[string]any {
	m := map[string]any{
		"id":           p.id,
		"dateEvent":    p.dateEvent,
		"description":  p.description,
		"cout":         p.cout,
		"sousGarantie": p.sousGarantie,
	}
	if p.moto != nil {
		m["moto"] = p.moto.ToMap()
	}
	if p.entretien != nil {
		m["entretien"] = p.entretien.ToMap()
	}
	return m
}

func (p *Panne) MarshalJSON() ([]byte, error) { return json.Marshal(p.ToMap()) }
