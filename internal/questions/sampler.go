package questions

import "math/rand/v2"

// Sample returns up to count items drawn from items without replacement,
// in random order. items is never modified. A nil r uses the global
// source, which is safe for concurrent use.
func Sample[T any](r *rand.Rand, items []T, count int) []T {
	if count <= 0 {
		return []T{}
	}

	shuffled := make([]T, len(items))
	copy(shuffled, items)

	intN := rand.IntN
	if r != nil {
		intN = r.IntN
	}

	// Fisher-Yates, walking down from the last index.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:min(count, len(shuffled))]
}
