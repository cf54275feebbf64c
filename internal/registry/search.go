package registry

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search ranks tools whose name fuzzily matches query, then appends tools whose
// description contains it. An empty query returns every tool.
func (r *Registry) Search(query string) []Tool {
	tools := r.Tools()
	query = strings.TrimSpace(query)
	if query == "" {
		return tools
	}

	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)

	seen := make(map[int]bool, len(ranks))
	out := make([]Tool, 0, len(ranks))
	for _, rank := range ranks {
		seen[rank.OriginalIndex] = true
		out = append(out, tools[rank.OriginalIndex])
	}

	needle := strings.ToLower(query)
	for i, t := range tools {
		if seen[i] {
			continue
		}
		if strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}
