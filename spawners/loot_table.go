package spawners

import (
	"math/rand"
)

// WeightedTable picks entries with probability proportional to their weight
type WeightedTable[T any] struct {
	Entries []WeightedEntry[T]
	total   int
}

// WeightedEntry is one weighted choice
type WeightedEntry[T any] struct {
	Value  T
	Weight int
}

// NewWeightedTable creates a table, dropping entries without positive weight
func NewWeightedTable[T any](entries []WeightedEntry[T]) *WeightedTable[T] {
	table := &WeightedTable[T]{Entries: make([]WeightedEntry[T], 0, len(entries))}
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		table.Entries = append(table.Entries, entry)
		table.total += entry.Weight
	}
	return table
}

// Len returns the number of selectable entries
func (t *WeightedTable[T]) Len() int {
	return len(t.Entries)
}

// Pick rolls once. ok is false for an empty table.
func (t *WeightedTable[T]) Pick(rng *rand.Rand) (value T, ok bool) {
	if t.total <= 0 {
		return value, false
	}

	roll := rng.Intn(t.total)
	for _, entry := range t.Entries {
		if roll < entry.Weight {
			return entry.Value, true
		}
		roll -= entry.Weight
	}
	return value, false
}
