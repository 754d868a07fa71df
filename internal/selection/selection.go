// Package selection implements the policy for choosing the next comfort
// message: catalog-lifetime recency with a forced reset on exhaustion, plus
// suppression of immediate id and category repeats.
package selection

import (
	"math/rand"

	"github.com/mindpingapp/mindping/internal/catalog"
	"github.com/mindpingapp/mindping/internal/models"
)

// Pick chooses the next message to schedule or deliver.
//
//   - deliveredIDs: every id the user has ever received (recency window)
//   - excludeIDs: ids currently reserved elsewhere (e.g. pending triggers)
//   - lastID / lastCategory: the most recent assignment, suppressed when an
//     alternative exists
//
// The function is pure apart from draws on rng; callers persist the result.
func Pick(rng *rand.Rand, cat *catalog.Catalog, deliveredIDs, excludeIDs []string, lastID string, lastCategory models.Category) models.Message {
	all := cat.All()

	excluded := make(map[string]struct{}, len(deliveredIDs)+len(excludeIDs))
	for _, id := range deliveredIDs {
		excluded[id] = struct{}{}
	}
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	// Unseen messages first
	pool := filter(all, func(m models.Message) bool {
		_, ok := excluded[m.ID]
		return !ok
	})

	// Recency window exhausted: reset, keeping only the hard exclusions so
	// ids may repeat across a full cycle
	if len(pool) == 0 {
		hard := make(map[string]struct{}, len(excludeIDs))
		for _, id := range excludeIDs {
			hard[id] = struct{}{}
		}
		pool = filter(all, func(m models.Message) bool {
			_, ok := hard[m.ID]
			return !ok
		})
	}

	// Even the hard exclusions cover the whole catalog: fall back to a full
	// cycle so the adjacency filters below still get a say
	if len(pool) == 0 {
		pool = all
	}

	if lastID != "" {
		if narrowed := filter(pool, func(m models.Message) bool { return m.ID != lastID }); len(narrowed) > 0 {
			pool = narrowed
		}
	}

	if lastCategory != "" {
		if narrowed := filter(pool, func(m models.Message) bool { return m.Category != lastCategory }); len(narrowed) > 0 {
			pool = narrowed
		}
	}

	return pool[rng.Intn(len(pool))]
}

func filter(messages []models.Message, keep func(models.Message) bool) []models.Message {
	var out []models.Message
	for _, m := range messages {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
