package domain

import (
	"strings"
	"time"
)

type number interface {
	~int | ~int64 | ~float64
}

func requireNonEmpty(entity, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(entity, field, ErrEmpty)
	}
	return nil
}

func requireNonNegative[N number](entity, field string, value N) error {
	if value < 0 {
		return invalid(entity, field, ErrNegative)
	}
	return nil
}

func requirePositive[N number](entity, field string, value N) error {
	if value <= 0 {
		return invalid(entity, field, ErrNotPositive)
	}
	return nil
}

func requireDate(entity, field string, value time.Time) error {
	if value.IsZero() {
		return invalid(entity, field, ErrInvalidDate)
	}
	return nil
}

// firstError renvoie la première erreur non nulle.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
