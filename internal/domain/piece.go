package domain

import "encoding/json"

const entityPiece = "piece"

// PieceProps - données nécessaires à la création d'une pièce détachée
type PieceProps struct {
	ID          int64
	Nom         string
	Description string
	Prix        float64
}

// Piece - pièce détachée référencée au catalogue
type Piece struct {
	id          int64
	nom         string
	description string
	prix        float64
}

func NewPiece(p PieceProps) (*Piece, error) {
	if err := firstError(
		requireNonEmpty(entityPiece, "nom", p.Nom),
		requireNonNegative(entityPiece, "prix", p.Prix),
	); err != nil {
		return nil, err
	}
	return &Piece{id: p.ID, nom: p.Nom, description: p.Description, prix: p.Prix}, nil
}

func (p *Piece) ID() int64 { return p.id }

func (p *Piece) WithID(id int64) *Piece {
	cp := *p
	cp.id = id
	return &cp
}

func (p *Piece) Nom() string         { return p.nom }
func (p *Piece) Description() string { return p.description }
func (p *Piece) Prix() float64       { return p.prix }

func (p *Piece) SetNom(v string) error {
	if err := requireNonEmpty(entityPiece, "nom", v); err != nil {
		return err
	}
	p.nom = v
	return nil
}

func (p *Piece) SetDescription(v string) { p.description = v }

func (p *Piece) SetPrix(v float64) error {
	if err := requireNonNegative(entityPiece, "prix", v); err != nil {
		return err
	}
	p.prix = v
	return nil
}

func (p *Piece) ToMap() map[string]any {
	m := map[string]any{
		"id":   p.id,
		"nom":  p.nom,
		"prix": p.prix,
	}
	if p.description != "" {
		m["description"] = p.description
	}
	return m
}

func (p *Piece) MarshalJSON() ([]byte, error) { return json.Marshal(p.ToMap()) }
