package memory

import (
	"context"

	"github.com/frontandrew/motofleet/internal/domain"
	"github.com/frontandrew/motofleet/internal/repository"
)

// Vérification à la compilation
var (
	_ repository.ClientRepository        = (*Store[*domain.Client])(nil)
	_ repository.MotoRepository          = (*Store[*domain.Moto])(nil)
	_ repository.StockRepository         = (*StockRepository)(nil)
	_ repository.CommandePieceRepository = (*CommandePieceRepository)(nil)
	_ repository.NotificationRepository  = (*NotificationRepository)(nil)
)

// StockRepository ajoute la recherche par pièce au store générique
type StockRepository struct {
	*Store[*domain.Stock]
}

func NewStockRepository() *StockRepository {
	return &StockRepository{Store: NewStore[*domain.Stock]("stock")}
}

func (r *StockRepository) FindByPieceID(_ context.Context, pieceID int64) (*domain.Stock, error) {
	found := r.Filter(func(s *domain.Stock) bool {
		return s.Piece() != nil && s.Piece().ID() == pieceID
	})
	if len(found) == 0 {
		return nil, domain.NewNotFound("stock for piece", pieceID)
	}
	return found[0], nil
}

// CommandePieceRepository ajoute l'historique par pièce au store générique
type CommandePieceRepository struct {
	*Store[*domain.CommandePiece]
}

func NewCommandePieceRepository() *CommandePieceRepository {
	return &CommandePieceRepository{Store: NewStore[*domain.CommandePiece]("commande piece")}
}

func (r *CommandePieceRepository) FindByPieceID(_ context.Context, pieceID int64) ([]*domain.CommandePiece, error) {
	return r.Filter(func(c *domain.CommandePiece) bool {
		return c.Piece() != nil && c.Piece().ID() == pieceID
	}), nil
}

// NotificationRepository ajoute la recherche des notifications non lues
type NotificationRepository struct {
	*Store[*domain.Notification]
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{Store: NewStore[*domain.Notification]("notification")}
}

func (r *NotificationRepository) FindUnreadByEntretienID(_ context.Context, entretienID int64) ([]*domain.Notification, error) {
	return r.Filter(func(n *domain.Notification) bool {
		return !n.EstLu() && n.Entretien() != nil && n.Entretien().ID() == entretienID
	}), nil
}

func (r *NotificationRepository) FindUnreadByPieceID(_ context.Context, pieceID int64) ([]*domain.Notification, error) {
	return r.Filter(func(n *domain.Notification) bool {
		return !n.EstLu() && n.Piece() != nil && n.Piece().ID() == pieceID
	}), nil
}

// Registry - un dépôt partagé par type d'entité, construit une seule fois
// au démarrage du processus.
type Registry struct {
	Clients       *Store[*domain.Client]
	Conducteurs   *Store[*domain.Conducteur]
	ModelesMoto   *Store[*domain.ModeleMoto]
	Motos         *Store[*domain.Moto]
	Pieces        *Store[*domain.Piece]
	Stocks        *StockRepository
	Commandes     *CommandePieceRepository
	Entretiens    *Store[*domain.Entretien]
	Essais        *Store[*domain.Essai]
	Pannes        *Store[*domain.Panne]
	Incidents     *Store[*domain.Incident]
	Notifications *NotificationRepository
}

func NewRegistry() *Registry {
	return &Registry{
		Clients:       NewStore[*domain.Client]("client"),
		Conducteurs:   NewStore[*domain.Conducteur]("conducteur"),
		ModelesMoto:   NewStore[*domain.ModeleMoto]("modele moto"),
		Motos:         NewStore[*domain.Moto]("moto"),
		Pieces:        NewStore[*domain.Piece]("piece"),
		Stocks:        NewStockRepository(),
		Commandes:     NewCommandePieceRepository(),
		Entretiens:    NewStore[*domain.Entretien]("entretien"),
		Essais:        NewStore[*domain.Essai]("essai"),
		Pannes:        NewStore[*domain.Panne]("panne"),
		Incidents:     NewStore[*domain.Incident]("incident"),
		Notifications: NewNotificationRepository(),
	}
}
