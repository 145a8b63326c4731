package extract

import "strings"

// KeySet is the compiled key vocabulary threaded through the extraction
// engine. All matching is case-insensitive; name keys keep their configured
// priority order.
type KeySet struct {
	nameKeys      []string
	hostKeys      map[string]struct{}
	containerKeys map[string]struct{}
}

// NewKeySet compiles a key set from raw key lists. Keys are lower-cased and
// blank entries are dropped.
func NewKeySet(nameKeys, hostKeys, containerKeys []string) KeySet {
	ks := KeySet{
		nameKeys:      make([]string, 0, len(nameKeys)),
		hostKeys:      make(map[string]struct{}, len(hostKeys)),
		containerKeys: make(map[string]struct{}, len(containerKeys)),
	}
	for _, key := range nameKeys {
		if key = strings.ToLower(strings.TrimSpace(key)); key != "" {
			ks.nameKeys = append(ks.nameKeys, key)
		}
	}
	for _, key := range hostKeys {
		if key = strings.ToLower(strings.TrimSpace(key)); key != "" {
			ks.hostKeys[key] = struct{}{}
		}
	}
	for _, key := range containerKeys {
		if key = strings.ToLower(strings.TrimSpace(key)); key != "" {
			ks.containerKeys[key] = struct{}{}
		}
	}
	return ks
}

// DefaultKeySet returns the key set compiled from the default vocabulary.
func DefaultKeySet() KeySet {
	return NewKeySet(DefaultNameKeys, DefaultHostKeys, DefaultContainerKeys)
}

// isHostKey reports whether the lower-cased key is a host leaf key.
func (k KeySet) isHostKey(lower string) bool {
	_, ok := k.hostKeys[lower]
	return ok
}

// harvestable reports whether the lower-cased key should be swept for
// hostnames when it sits directly on an entity object: host leaf keys plus
// the container keys.
func (k KeySet) harvestable(lower string) bool {
	if _, ok := k.hostKeys[lower]; ok {
		return true
	}
	_, ok := k.containerKeys[lower]
	return ok
}
