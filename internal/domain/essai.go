package domain

import (
	"encoding/json"
	"time"
)

const entityEssai = "essai"

// EssaiProps - données nécessaires à la création d'un essai
type EssaiProps struct {
	ID                  int64
	Moto                *Moto
	Conducteur          *Conducteur
	DateDebut           time.Time
	DateFin             *time.Time // nil tant que l'essai est en cours
	KilometrageParcouru int
}

// Essai - essai d'une moto par un conducteur
type Essai struct {
	id                  int64
	moto                *Moto
	conducteur          *Conducteur
	dateDebut           time.Time
	dateFin             *time.Time
	kilometrageParcouru int
}

func NewEssai(p EssaiProps) (*Essai, error) {
	if p.Moto == nil {
		return nil, invalid(entityEssai, "moto", ErrEmpty)
	}
	if p.Conducteur == nil {
		return nil, invalid(entityEssai, "conducteur", ErrEmpty)
	}
	if err := firstError(
		requireDate(entityEssai, "dateDebut", p.DateDebut),
		checkDateFin(p.DateDebut, p.DateFin),
		requireNonNegative(entityEssai, "kilometrageParcouru", p.KilometrageParcouru),
	); err != nil {
		return nil, err
	}
	return &Essai{
		id:                  p.ID,
		moto:                p.Moto,
		conducteur:          p.Conducteur,
		dateDebut:           p.DateDebut,
		dateFin:             p.DateFin,
		kilometrageParcouru: p.KilometrageParcouru,
	}, nil
}

func checkDateFin(debut time.Time, fin *time.Time) error {
	if fin == nil {
		return nil
	}
	if err := requireDate(entityEssai, "dateFin", *fin); err != nil {
		return err
	}
	if fin.Before(debut) {
		return invalid(entityEssai, "dateFin", ErrInvalidDateRange)
	}
	return nil
}

func (e *Essai) ID() int64 { return e.id }

func (e *Essai) WithID(id int64) *Essai {
	cp := *e
	cp.id = id
	return &cp
}

func (e *Essai) Moto() *Moto              { return e.moto }
func (e *Essai) Conducteur() *Conducteur  { return e.conducteur }
func (e *Essai) DateDebut() time.Time     { return e.dateDebut }
func (e *Essai) DateFin() *time.Time      { return e.dateFin }
func (e *Essai) KilometrageParcouru() int { return e.kilometrageParcouru }

// EstTermine indique si la date de fin est renseignée
func (e *Essai) EstTermine() bool { return e.dateFin != nil }

func (e *Essai) SetMoto(v *Moto) error {
	if v == nil {
		return invalid(entityEssai, "moto", ErrEmpty)
	}
	e.moto = v
	return nil
}

func (e *Essai) SetConducteur(v *Conducteur) error {
	if v == nil {
		return invalid(entityEssai, "conducteur", ErrEmpty)
	}
	e.conducteur = v
	return nil
}

func (e *Essai) SetDateDebut(v time.Time) error {
	if err := firstError(requireDate(entityEssai, "dateDebut", v), checkDateFin(v, e.dateFin)); err != nil {
		return err
	}
	e.dateDebut = v
	return nil
}

func (e *Essai) SetDateFin(v *time.Time) error {
	if err := checkDateFin(e.dateDebut, v); err != nil {
		return err
	}
	e.dateFin = v
	return nil
}

func (e *Essai) SetKilometrageParcouru(v int) error {
	if err := requireNonNegative(entityEssai, "kilometrageParcouru", v); err != nil {
		return err
	}
	e.kilometrageParcouru = v
	return nil
}

func (e *Essai) ToMap() map[string]any {
	return map[string]any{
		"id":                  e.id,
		"moto":                e.moto.ToMap(),
		"conducteur":          e.conducteur.ToMap(),
		"dateDebut":           e.dateDebut,
		"dateFin":             optionalTime(e.dateFin),
		"kilometrageParcouru": e.kilometrageParcouru,
	}
}

func (e *Essai) MarshalJSON() ([]byte, error) { return json.Marshal(e.ToMap()) }
