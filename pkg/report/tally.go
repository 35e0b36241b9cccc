package report

import "pmu/entities"

// TallyStatus counts items per status value. Every status in the domain is
// present in the result, absent ones as 0, so renderers never have to
// special-case empty buckets.
func TallyStatus[T any](items []T, statusOf func(T) entities.Status) map[entities.Status]int {
	out := make(map[entities.Status]int, 3)
	for _, s := range entities.AllStatuses() {
		out[s] = 0
	}
	for _, it := range items {
		out[statusOf(it)]++
	}
	return out
}
