package domain

// Serializable est implémentée par toutes les entités: les références
// vers d'autres entités sont sérialisées via la même interface.
type Serializable interface {
	ToMap() map[string]any
}

// ToMaps sérialise une liste d'entités.
func ToMaps[T Serializable](items []T) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToMap())
	}
	return out
}
