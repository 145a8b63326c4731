package extract

import (
	"sort"
	"strings"
)

// Entity is a named record discovered in a document together with the
// hostnames attributed to it. Name keeps the first-seen raw spelling; Hosts
// is sorted, deduplicated and never nil.
type Entity struct {
	// Name is the display name of the application.
	Name string `json:"name"`

	// Hosts are the destination hostnames harvested for this application.
	Hosts []string `json:"hosts"`
}

// hit is one raw entity occurrence found during the walk, before merging.
type hit struct {
	name  string
	hosts map[string]struct{}
}

// Extract walks an arbitrary decoded JSON document and returns the entities
// it contains, sorted by normalized name ascending.
//
// An object counts as an entity when one of the configured name keys
// (case-insensitive) holds a non-empty string; name keys are tried in their
// configured priority order and the first qualifying one wins. With
// collectHosts, the values under the object's own host and container keys
// are harvested and attributed to the entity. Traversal continues into every
// value after an object is processed, so entity lists nested inside other
// entities are still discovered; in irregular payloads this can attribute a
// host to an outer entity, an accepted trade-off for schema-free recall.
//
// Occurrences sharing a normalized name merge into one entity: hosts are
// unioned and the first-seen spelling is kept as the display name. Extract
// never fails on well-formed JSON; DecodeDocument guards the ingestion
// boundary.
func Extract(doc any, keys KeySet, collectHosts bool) []Entity {
	var hits []hit
	walk(doc, keys, collectHosts, &hits)

	// Merge occurrences by normalized name, first spelling wins.
	display := make(map[string]string, len(hits))
	hostSets := make(map[string]map[string]struct{}, len(hits))
	for _, h := range hits {
		key := Normalize(h.name)
		if _, seen := display[key]; !seen {
			display[key] = h.name
			hostSets[key] = make(map[string]struct{})
		}
		for host := range h.hosts {
			hostSets[key][host] = struct{}{}
		}
	}

	normKeys := make([]string, 0, len(display))
	for key := range display {
		normKeys = append(normKeys, key)
	}
	sort.Strings(normKeys)

	entities := make([]Entity, 0, len(normKeys))
	for _, key := range normKeys {
		entities = append(entities, Entity{
			Name:  display[key],
			Hosts: sortedSet(hostSets[key]),
		})
	}
	return entities
}

// Names returns the display names of the entities, preserving their order.
func Names(entities []Entity) []string {
	names := make([]string, 0, len(entities))
	for _, e := range entities {
		names = append(names, e.Name)
	}
	return names
}

// walk is the depth-first traversal, appending one hit per name-bearing
// object. Object keys are visited in sorted order so traversal is
// deterministic regardless of map iteration order.
func walk(v any, keys KeySet, collectHosts bool, hits *[]hit) {
	switch node := v.(type) {
	case []any:
		for _, item := range node {
			walk(item, keys, collectHosts, hits)
		}
	case map[string]any:
		if name, ok := entityName(node, keys); ok {
			h := hit{name: name}
			if collectHosts {
				h.hosts = make(map[string]struct{})
				for key, value := range node {
					if keys.harvestable(strings.ToLower(key)) {
						harvestInto(h.hosts, value, keys)
					}
				}
			}
			*hits = append(*hits, h)
		}
		for _, key := range sortedKeys(node) {
			walk(node[key], keys, collectHosts, hits)
		}
	}
}

// entityName resolves the display name of an object, if it carries one.
// Name keys are tried in priority order; a key qualifies only when its value
// is a string that is non-empty after trimming, otherwise the next name key
// is considered.
func entityName(node map[string]any, keys KeySet) (string, bool) {
	for _, nameKey := range keys.nameKeys {
		value, ok := lookupFold(node, nameKey)
		if !ok {
			continue
		}
		s, ok := value.(string)
		if !ok {
			continue
		}
		if name := strings.TrimSpace(s); name != "" {
			return name, true
		}
	}
	return "", false
}

// lookupFold finds the value stored under key, matching case-insensitively.
// An exact match wins; among case variants the lexicographically smallest
// raw key is used, keeping the lookup independent of map iteration order.
func lookupFold(node map[string]any, key string) (any, bool) {
	if value, ok := node[key]; ok {
		return value, true
	}
	var best string
	found := false
	for raw := range node {
		if strings.ToLower(raw) != key {
			continue
		}
		if !found || raw < best {
			best = raw
			found = true
		}
	}
	if !found {
		return nil, false
	}
	return node[best], true
}

func sortedKeys(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for key := range node {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// sortedSet flattens a string set into a sorted slice. The result is never
// nil so JSON output renders an empty array instead of null.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
