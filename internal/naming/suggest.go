package naming

import "sort"

// MinSuggestionScore is the similarity below which candidates are not suggested.
const MinSuggestionScore = 0.6

// DefaultMaxSuggestions bounds the number of suggestions in diagnostics.
const DefaultMaxSuggestions = 3

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates most similar to name, best first.
// Ties are broken alphabetically so the result is deterministic.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxSuggestions
	}

	var ranked []scored

	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup || c == name {
			continue
		}

		seen[c] = struct{}{}

		if s := Similarity(name, c); s >= MinSuggestionScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for i := 0; i < len(ranked) && i < limit; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
