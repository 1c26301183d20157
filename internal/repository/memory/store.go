// Package memory fournit les dépôts en mémoire: une instance partagée par
// type d'entité, construite au démarrage et injectée dans les cas d'utilisation.
package memory

import (
	"context"
	"sync"

	"github.com/frontandrew/motofleet/internal/domain"
)

// Entity - contrainte des entités stockées: un identifiant numérique
// (0 avant persistance) et une fabrique de copie portant l'identifiant final.
type Entity[T any] interface {
	ID() int64
	WithID(id int64) T
}

// Store - stockage générique indexé par identifiant
type Store[T Entity[T]] struct {
	name   string
	mu     sync.RWMutex
	items  map[int64]T
	order  []int64
	nextID int64
}

// NewStore crée un store vide; name sert aux messages d'erreur
func NewStore[T Entity[T]](name string) *Store[T] {
	return &Store[T]{
		name:   name,
		items:  make(map[int64]T),
		nextID: 1,
	}
}

func (s *Store[T]) FindByID(_ context.Context, id int64) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, domain.NewNotFound(s.name, id)
	}
	return item, nil
}

func (s *Store[T]) Save(_ context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.ID()
	if id == 0 {
		id = s.nextID
		entity = entity.WithID(id)
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}

	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = entity
	return entity, nil
}

func (s *Store[T]) Update(_ context.Context, entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.ID()
	if id == 0 {
		var zero T
		return zero, domain.ErrMissingID
	}
	if _, ok := s.items[id]; !ok {
		var zero T
		return zero, domain.NewNotFound(s.name, id)
	}
	s.items[id] = entity
	return entity, nil
}

func (s *Store[T]) FindAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]T, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.items[id])
	}
	return list, nil
}

func (s *Store[T]) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Filter parcourt les entités dans l'ordre d'insertion et garde celles
// qui satisfont le prédicat.
func (s *Store[T]) Filter(match func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []T
	for _, id := range s.order {
		if item := s.items[id]; match(item) {
			list = append(list, item)
		}
	}
	return list
}

// Len renvoie le nombre d'entités stockées
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
