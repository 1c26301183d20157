package repository

import (
	"context"

	"github.com/frontandrew/motofleet/internal/domain"
)

// CRUD - contrat commun à tous les dépôts, indexés par identifiant numérique
type CRUD[T any] interface {
	// FindByID renvoie *domain.NotFoundError si l'identifiant est inconnu
	FindByID(ctx context.Context, id int64) (T, error)

	// Save attribue un identifiant si l'entité n'en a pas, puis l'enregistre
	Save(ctx context.Context, entity T) (T, error)

	// Update remplace une entité existante; échoue si l'identifiant est inconnu
	Update(ctx context.Context, entity T) (T, error)

	// FindAll renvoie une copie de la liste, dans l'ordre d'insertion
	FindAll(ctx context.Context) ([]T, error)

	// Delete renvoie false si l'identifiant n'existait pas
	// Les entités qui référencent l'entité supprimée ne sont pas modifiées.
	Delete(ctx context.Context, id int64) (bool, error)
}

type ClientRepository interface {
	CRUD[*domain.Client]
}

type ConducteurRepository interface {
	CRUD[*domain.Conducteur]
}

type ModeleMotoRepository interface {
	CRUD[*domain.ModeleMoto]
}

type MotoRepository interface {
	CRUD[*domain.Moto]
}

type PieceRepository interface {
	CRUD[*domain.Piece]
}

// StockRepository - un stock au plus par pièce
type StockRepository interface {
	CRUD[*domain.Stock]

	// FindByPieceID renvoie le stock de la pièce, ou *domain.NotFoundError
	FindByPieceID(ctx context.Context, pieceID int64) (*domain.Stock, error)
}

type CommandePieceRepository interface {
	CRUD[*domain.CommandePiece]

	// FindByPieceID renvoie toutes les commandes passées pour la pièce
	FindByPieceID(ctx context.Context, pieceID int64) ([]*domain.CommandePiece, error)
}

type EntretienRepository interface {
	CRUD[*domain.Entretien]
}

type EssaiRepository interface {
	CRUD[*domain.Essai]
}

type PanneRepository interface {
	CRUD[*domain.Panne]
}

type IncidentRepository interface {
	CRUD[*domain.Incident]
}

type NotificationRepository interface {
	CRUD[*domain.Notification]

	// FindUnreadByEntretienID renvoie les rappels non lus de l'entretien
	FindUnreadByEntretienID(ctx context.Context, entretienID int64) ([]*domain.Notification, error)

	// FindUnreadByPieceID renvoie les alertes non lues de la pièce
	FindUnreadByPieceID(ctx context.Context, pieceID int64) ([]*domain.Notification, error)
}
