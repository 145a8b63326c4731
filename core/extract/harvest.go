package extract

import "strings"

// HarvestHosts gathers every hostname string reachable inside a decoded JSON
// value:
//   - a string counts when non-empty after trimming;
//   - an array contributes the union over its elements;
//   - an object contributes the values under recognized host leaf keys and is
//     additionally descended through every nested object or array value, so
//     hosts buried in unknown substructure are still found;
//   - nulls, numbers and booleans contribute nothing.
//
// The dual strategy on objects (targeted leaf-key lookup plus blanket
// descent) over-collects in rare shapes; set semantics absorb the duplicates.
// The result is unordered; callers sort before producing output.
func HarvestHosts(v any, keys KeySet) map[string]struct{} {
	hosts := make(map[string]struct{})
	harvestInto(hosts, v, keys)
	return hosts
}

func harvestInto(dst map[string]struct{}, v any, keys KeySet) {
	switch node := v.(type) {
	case string:
		if host := strings.TrimSpace(node); host != "" {
			dst[host] = struct{}{}
		}
	case []any:
		for _, item := range node {
			harvestInto(dst, item, keys)
		}
	case map[string]any:
		for key, value := range node {
			if keys.isHostKey(strings.ToLower(key)) {
				harvestInto(dst, value, keys)
			}
			switch value.(type) {
			case map[string]any, []any:
				harvestInto(dst, value, keys)
			}
		}
	}
}
