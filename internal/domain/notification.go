package domain

import (
	"encoding/json"
	"time"
)

const entityNotification = "notification"

// Destinataire synthétique des alertes de stock (jamais persisté)
const (
	GestionnaireNom     = "Gestionnaire"
	GestionnaireType    = "gestionnaire"
	GestionnaireContact = "gestionnaire@example.com"
)

// NotificationProps - données nécessaires à la création d'une notification
type NotificationProps struct {
	ID               int64
	Entretien        *Entretien // rappel d'entretien
	Piece            *Piece     // alerte de stock bas
	Client           *Client
	Message          string
	DateNotification time.Time
	EstLu            bool
}

// Notification - message généré par un rappel d'entretien ou une alerte de stock
type Notification struct {
	id               int64
	entretien        *Entretien
	piece            *Piece
	client           *Client
	message          string
	dateNotification time.Time
	estLu            bool
}

func NewNotification(p NotificationProps) (*Notification, error) {
	if p.Client == nil {
		return nil, invalid(entityNotification, "client", ErrEmpty)
	}
	if err := firstError(
		requireNonEmpty(entityNotification, "message", p.Message),
		requireDate(entityNotification, "dateNotification", p.DateNotification),
	); err != nil {
		return nil, err
	}
	return &Notification{
		id:               p.ID,
		entretien:        p.Entretien,
		piece:            p.Piece,
		client:           p.Client,
		message:          p.Message,
		dateNotification: p.DateNotification,
		estLu:            p.EstLu,
	}, nil
}

// NewGestionnaire construit le client destinataire des alertes internes
func NewGestionnaire() *Client {
	return &Client{nom: GestionnaireNom, typ: GestionnaireType, contactInfo: GestionnaireContact}
}

func (n *Notification) ID() int64 { return n.id }

func (n *Notification) WithID(id int64) *Notification {
	cp := *n
	cp.id = id
	return &cp
}

func (n *Notification) Entretien() *Entretien       { return n.entretien }
func (n *Notification) Piece() *Piece               { return n.piece }
func (n *Notification) Client() *Client             { return n.client }
func (n *Notification) Message() string             { return n.message }
func (n *Notification) DateNotification() time.Time { return n.dateNotification }
func (n *Notification) EstLu() bool                 { return n.estLu }

func (n *Notification) SetClient(v *Client) error {
	if v == nil {
		return invalid(entityNotification, "client", ErrEmpty)
	}
	n.client = v
	return nil
}

func (n *Notification) SetMessage(v string) error {
	if err := requireNonEmpty(entityNotification, "message", v); err != nil {
		return err
	}
	n.message = v
	return nil
}

func (n *Notification) SetDateNotification(v time.Time) error {
	if err := requireDate(entityNotification, "dateNotification", v); err != nil {
		return err
	}
	n.dateNotification = v
	return nil
}

func (n *Notification) SetEstLu(v bool) { n.estLu = v }

func (n *Notification) ToMap() map[string]any {
	m := map[string]any{
		"id":               n.id,
		"client":           n.client.ToMap(),
		"message":          n.message,
		"dateNotification": n.dateNotification,
		"estLu":            n.estLu,
	}
	if n.entretien != nil {
		m["entretien"] = n.entretien.ToMap()
	}
	if n.piece != nil {
		m["piece"] = n.piece.ToMap()
	}
	return m
}

func (n *Notification) MarshalJSON() ([]byte, error) { return json.Marshal(n.ToMap()) }
