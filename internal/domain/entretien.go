package domain

import (
	"encoding/json"
	"strings"
	"time"
)

const entityEntretien = "entretien"

// Types d'entretien
const (
	EntretienPreventif = "préventif"
	EntretienCuratif   = "curatif"
)

// EntretienProps - données nécessaires à la création d'un entretien
type EntretienProps struct {
	ID            int64
	Moto          *Moto
	TypeEntretien string
	DatePlanifiee *time.Time
	DateRealisee  *time.Time
	Kilometrage   int
	Cout          float64
	Description   string
}

// Entretien - entretien planifié ou réalisé d'une moto
type Entretien struct {
	id            int64
	moto          *Moto
	typeEntretien string
	datePlanifiee *time.Time
	dateRealisee  *time.Time
	kilometrage   int
	cout          float64
	description   string
}

func NewEntretien(p EntretienProps) (*Entretien, error) {
	if p.Moto == nil {
		return nil, invalid(entityEntretien, "moto", ErrEmpty)
	}
	if err := firstError(
		requireNonEmpty(entityEntretien, "typeEntretien", p.TypeEntretien),
		requireNonNegative(entityEntretien, "kilometrage", p.Kilometrage),
		requireNonNegative(entityEntretien, "cout", p.Cout),
	); err != nil {
		return nil, err
	}
	return &Entretien{
		id:            p.ID,
		moto:          p.Moto,
		typeEntretien: p.TypeEntretien,
		datePlanifiee: p.DatePlanifiee,
		dateRealisee:  p.DateRealisee,
		kilometrage:   p.Kilometrage,
		cout:          p.Cout,
		description:   p.Description,
	}, nil
}

func (e *Entretien) ID() int64 { return e.id }

func (e *Entretien) WithID(id int64) *Entretien {
	cp := *e
	cp.id = id
	return &cp
}

func (e *Entretien) Moto() *Moto               { return e.moto }
func (e *Entretien) TypeEntretien() string     { return e.typeEntretien }
func (e *Entretien) DatePlanifiee() *time.Time { return e.datePlanifiee }
func (e *Entretien) DateRealisee() *time.Time  { return e.dateRealisee }
func (e *Entretien) Kilometrage() int          { return e.kilometrage }
func (e *Entretien) Cout() float64             { return e.cout }
func (e *Entretien) Description() string       { return e.description }

// EstCuratif compare le type sans tenir compte de la casse
func (e *Entretien) EstCuratif() bool {
	return strings.EqualFold(e.typeEntretien, EntretienCuratif)
}

// EstDu: planifié à une date passée (ou à l'instant now) et pas encore réalisé
func (e *Entretien) EstDu(now time.Time) bool {
	return e.datePlanifiee != nil && !e.datePlanifiee.After(now) && e.dateRealisee == nil
}

func (e *Entretien) SetMoto(v *Moto) error {
	if v == nil {
		return invalid(entityEntretien, "moto", ErrEmpty)
	}
	e.moto = v
	return nil
}

func (e *Entretien) SetTypeEntretien(v string) error {
	if err := requireNonEmpty(entityEntretien, "typeEntretien", v); err != nil {
		return err
	}
	e.typeEntretien = v
	return nil
}

func (e *Entretien) SetDatePlanifiee(v *time.Time) { e.datePlanifiee = v }
func (e *Entretien) SetDateRealisee(v *time.Time)  { e.dateRealisee = v }

func (e *Entretien) SetKilometrage(v int) error {
	if err := requireNonNegative(entityEntretien, "kilometrage", v); err != nil {
		return err
	}
	e.kilometrage = v
	return nil
}

func (e *Entretien) SetCout(v float64) error {
	if err := requireNonNegative(entityEntretien, "cout", v); err != nil {
		return err
	}
	e.cout = v
	return nil
}

func (e *Entretien) SetDescription(v string) { e.description = v }

func (e *Entretien) ToMap() map[string]any {
	return map[string]any{
		"id":            e.id,
		"moto":          e.moto.ToMap(),
		"typeEntretien": e.typeEntretien,
		"datePlanifiee": optionalTime(e.datePlanifiee),
		"dateRealisee":  optionalTime(e.dateRealisee),
		"kilometrage":   e.kilometrage,
		"cout":          e.cout,
		"description":   e.description,
	}
}

func (e *Entretien) MarshalJSON() ([]byte, error) { return json.Marshal(e.ToMap()) }
