package domain

import "encoding/json"

const entityConducteur = "conducteur"

// ConducteurProps - données nécessaires à la création d'un profil conducteur
type ConducteurProps struct {
	ID               int64
	Nom              string
	Permis           string
	ExperienceAnnees int
	ContactInfo      string
}

// Conducteur - pilote d'essai
type Conducteur struct {
	id               int64
	nom              string
	permis           string
	experienceAnnees int
	contactInfo      string
}

func NewConducteur(p ConducteurProps) (*Conducteur, error) {
	if err := firstError(
		requireNonEmpty(entityConducteur, "nom", p.Nom),
		requireNonEmpty(entityConducteur, "permis", p.Permis),
		requireNonNegative(entityConducteur, "experienceAnnees", p.ExperienceAnnees),
	); err != nil {
		return nil, err
	}
	return &Conducteur{
		id:               p.ID,
		nom:              p.Nom,
		permis:           p.Permis,
		experienceAnnees: p.ExperienceAnnees,
		contactInfo:      p.ContactInfo,
	}, nil
}

func (c *Conducteur) ID() int64 { return c.id }

func (c *Conducteur) WithID(id int64) *Conducteur {
	cp := *c
	cp.id = id
	return &cp
}

func (c *Conducteur) Nom() string           { return c.nom }
func (c *Conducteur) Permis() string        { return c.permis }
func (c *Conducteur) ExperienceAnnees() int { return c.experienceAnnees }
func (c *Conducteur) ContactInfo() string   { return c.contactInfo }

func (c *Conducteur) SetNom(v string) error {
	if err := requireNonEmpty(entityConducteur, "nom", v); err != nil {
		return err
	}
	c.nom = v
	return nil
}

func (c *Conducteur) SetPermis(v string) error {
	if err := requireNonEmpty(entityConducteur, "permis", v); err != nil {
		return err
	}
	c.permis = v
	return nil
}

func (c *Conducteur) SetExperienceAnnees(v int) error {
	if err := requireNonNegative(entityConducteur, "experienceAnnees", v); err != nil {
		return err
	}
	c.experienceAnnees = v
	return nil
}

func (c *Conducteur) SetContactInfo(v string) { c.contactInfo = v }

func (c *Conducteur) ToMap() map[string]any {
	m := map[string]any{
		"id":               c.id,
		"nom":              c.nom,
		"permis":           c.permis,
		"experienceAnnees": c.experienceAnnees,
	}
	if c.contactInfo != "" {
		m["contactInfo"] = c.contactInfo
	}
	return m
}

func (c *Conducteur) MarshalJSON() ([]byte, error) { return json.Marshal(c.ToMap()) }
