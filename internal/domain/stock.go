package domain

import "encoding/json"

const entityStock = "stock"

// StockProps - données nécessaires à la création d'un stock
type StockProps struct {
	ID          int64
	Piece       *Piece
	Quantite    int
	SeuilAlerte int // 0 par défaut
}

// Stock - état de l'inventaire d'une pièce (un stock par pièce)
type Stock struct {
	id          int64
	piece       *Piece
	quantite    int
	seuilAlerte int
}

func NewStock(p StockProps) (*Stock, error) {
	if p.Piece == nil {
		return nil, invalid(entityStock, "piece", ErrEmpty)
	}
	if err := firstError(
		requireNonNegative(entityStock, "quantite", p.Quantite),
		requireNonNegative(entityStock, "seuilAlerte", p.SeuilAlerte),
	); err != nil {
		return nil, err
	}
	return &Stock{id: p.ID, piece: p.Piece, quantite: p.Quantite, seuilAlerte: p.SeuilAlerte}, nil
}

func (s *Stock) ID() int64 { return s.id }

func (s *Stock) WithID(id int64) *Stock {
	cp := *s
	cp.id = id
	return &cp
}

func (s *Stock) Piece() *Piece    { return s.piece }
func (s *Stock) Quantite() int    { return s.quantite }
func (s *Stock) SeuilAlerte() int { return s.seuilAlerte }

// EstBas indique que la quantité a atteint le seuil d'alerte
func (s *Stock) EstBas() bool { return s.quantite <= s.seuilAlerte }

func (s *Stock) SetPiece(v *Piece) error {
	if v == nil {
		return invalid(entityStock, "piece", ErrEmpty)
	}
	s.piece = v
	return nil
}

func (s *Stock) SetQuantite(v int) error {
	if err := requireNonNegative(entityStock, "quantite", v); err != nil {
		return err
	}
	s.quantite = v
	return nil
}

func (s *Stock) SetSeuilAlerte(v int) error {
	if err := requireNonNegative(entityStock, "seuilAlerte", v); err != nil {
		return err
	}
	s.seuilAlerte = v
	return nil
}

func (s *Stock) ToMap() map[string]any {
	return map[string]any{
		"id":          s.id,
		"piece":       s.piece.ToMap(),
		"quantite":    s.quantite,
		"seuilAlerte": s.seuilAlerte,
	}
}

func (s *Stock) MarshalJSON() ([]byte, error) { return json.Marshal(s.ToMap()) }
