package domain

import (
	"encoding/json"
	"time"
)

const entityCommandePiece = "commande piece"

// Statuts usuels d'une commande
const (
	CommandeEnCours = "en cours"
	CommandeLivree  = "livrée"
	CommandeAnnulee = "annulée"
)

// CommandePieceProps - données nécessaires à la création d'une commande
type CommandePieceProps struct {
	ID             int64
	Piece          *Piece
	DateCommande   time.Time
	Quantite       int
	Cout           float64
	DelaiLivraison *int // en jours, optionnel
	Statut         string
}

// CommandePiece - commande de réapprovisionnement d'une pièce
type CommandePiece struct {
	id             int64
	piece          *Piece
	dateCommande   time.Time
	quantite       int
	cout           float64
	delaiLivraison *int
	statut         string
}

func NewCommandePiece(p CommandePieceProps) (*CommandePiece, error) {
	if p.Piece == nil {
		return nil, invalid(entityCommandePiece, "piece", ErrEmpty)
	}
	if err := firstError(
		requireDate(entityCommandePiece, "dateCommande", p.DateCommande),
		requirePositive(entityCommandePiece, "quantite", p.Quantite),
		requireNonNegative(entityCommandePiece, "cout", p.Cout),
		requireNonEmpty(entityCommandePiece, "statut", p.Statut),
		checkDelai(p.DelaiLivraison),
	); err != nil {
		return nil, err
	}
	return &CommandePiece{
		id:             p.ID,
		piece:          p.Piece,
		dateCommande:   p.DateCommande,
		quantite:       p.Quantite,
		cout:           p.Cout,
		delaiLivraison: p.DelaiLivraison,
		statut:         p.Statut,
	}, nil
}

func checkDelai(v *int) error {
	if v == nil {
		return nil
	}
	return requireNonNegative(entityCommandePiece, "delaiLivraison", *v)
}

func (c *CommandePiece) ID() int64 { return c.id }

func (c *CommandePiece) WithID(id int64) *CommandePiece {
	cp := *c
	cp.id = id
	return &cp
}

func (c *CommandePiece) Piece() *Piece           { return c.piece }
func (c *CommandePiece) DateCommande() time.Time { return c.dateCommande }
func (c *CommandePiece) Quantite() int           { return c.quantite }
func (c *CommandePiece) Cout() float64           { return c.cout }
func (c *CommandePiece) DelaiLivraison() *int    { return c.delaiLivraison }
func (c *CommandePiece) Statut() string          { return c.statut }

// DateLivraisonPrevue renvoie la date de commande augmentée du délai, si connu
func (c *CommandePiece) DateLivraisonPrevue() (time.Time, bool) {
	if c.delaiLivraison == nil {
		return time.Time{}, false
	}
	return c.dateCommande.AddDate(0, 0, *c.delaiLivraison), true
}

func (c *CommandePiece) SetPiece(v *Piece) error {
	if v == nil {
		return invalid(entityCommandePiece, "piece", ErrEmpty)
	}
	c.piece = v
	return nil
}

func (c *CommandePiece) SetDateCommande(v time.Time) error {
	if err := requireDate(entityCommandePiece, "dateCommande", v); err != nil {
		return err
	}
	c.dateCommande = v
	return nil
}

func (c *CommandePiece) SetQuantite(v int) error {
	if err := requirePositive(entityCommandePiece, "quantite", v); err != nil {
		return err
	}
	c.quantite = v
	return nil
}

func (c *CommandePiece) SetCout(v float64) error {
	if err := requireNonNegative(entityCommandePiece, "cout", v); err != nil {
		return err
	}
	c.cout = v
	return nil
}

func (c *CommandePiece) SetDelaiLivraison(v *int) error {
	if err := checkDelai(v); err != nil {
		return err
	}
	c.delaiLivraison = v
	return nil
}

func (c *CommandePiece) SetStatut(v string) error {
	if err := requireNonEmpty(entityCommandePiece, "statut", v); err != nil {
		return err
	}
	c.statut = v
	return nil
}

func (c *CommandePiece) ToMap() map[string]any {
	m := map[string]any{
		"id":           c.id,
		"piece":        c.piece.ToMap(),
		"dateCommande": c.dateCommande,
		"quantite":     c.quantite,
		"cout":         c.cout,
		"statut":       c.statut,
	}
	if c.delaiLivraison != nil {
		m["delaiLivraison"] = *c.delaiLivraison
	}
	return m
}

func (c *CommandePiece) MarshalJSON() ([]byte, error) { return json.Marshal(c.ToMap()) }
