package domain

import (
	"errors"
	"fmt"
)

// Erreurs du domaine - utilisées dans toutes les couches de l'application

// Erreurs de validation des entités
var (
	ErrValidation       = errors.New("validation failed")
	ErrEmpty            = errors.New("must not be empty")
	ErrNegative         = errors.New("must not be negative")
	ErrNotPositive      = errors.New("must be greater than zero")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrNoAssociation    = errors.New("at least one association is required")
)

// Erreurs des dépôts
var (
	ErrNotFound  = errors.New("not found")
	ErrMissingID = errors.New("entity has no identifier")
)

// Erreurs des cas d'utilisation
var (
	ErrPlannedDateRequired = errors.New("planned date is required for a curatif entretien")
	ErrMileageRequired     = errors.New("kilometrage is required for a curatif entretien")
)

// ValidationError décrit un invariant violé par un constructeur ou un setter.
type ValidationError struct {
	Entity string
	Field  string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %v", e.Entity, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is permet errors.Is(err, ErrValidation) pour toute erreur de validation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError est renvoyée quand un identifiant ne résout aucune entité.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound construit une NotFoundError pour l'entité et l'identifiant donnés.
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

func invalid(entity, field string, err error) error {
	return &ValidationError{Entity: entity, Field: field, Err: err}
}
