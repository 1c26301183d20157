package domain

import "encoding/json"

const entityClient = "client"

// ClientProps - données nécessaires à la création d'un client
type ClientProps struct {
	ID          int64
	Nom         string
	Type        string // entreprise, concessionnaire, particulier...
	ContactInfo string // optionnel
}

// Client - propriétaire (ou partenaire) d'une ou plusieurs motos
type Client struct {
	id          int64
	nom         string
	typ         string
	contactInfo string
}

// NewClient valide les propriétés et construit un client
func NewClient(p ClientProps) (*Client, error) {
	if err := firstError(
		requireNonEmpty(entityClient, "nom", p.Nom),
		requireNonEmpty(entityClient, "type", p.Type),
	); err != nil {
		return nil, err
	}
	return &Client{id: p.ID, nom: p.Nom, typ: p.Type, contactInfo: p.ContactInfo}, nil
}

func (c *Client) ID() int64 { return c.id }

// WithID renvoie une copie du client portant son identifiant définitif
func (c *Client) WithID(id int64) *Client {
	cp := *c
	cp.id = id
	return &cp
}

func (c *Client) Nom() string         { return c.nom }
func (c *Client) Type() string        { return c.typ }
func (c *Client) ContactInfo() string { return c.contactInfo }

func (c *Client) SetNom(v string) error {
	if err := requireNonEmpty(entityClient, "nom", v); err != nil {
		return err
	}
	c.nom = v
	return nil
}

func (c *Client) SetType(v string) error {
	if err := requireNonEmpty(entityClient, "type", v); err != nil {
		return err
	}
	c.typ = v
	return nil
}

func (c *Client) SetContactInfo(v string) { c.contactInfo = v }

func (c *Client) ToMap() map[string]any {
	m := map[string]any{
		"id":   c.id,
		"nom":  c.nom,
		"type": c.typ,
	}
	if c.contactInfo != "" {
		m["contactInfo"] = c.contactInfo
	}
	return m
}

func (c *Client) MarshalJSON() ([]byte, error) { return json.Marshal(c.ToMap()) }
