package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hostSlice(set map[string]struct{}) []string {
	return sortedSet(set)
}

// TestHarvestHosts_Scalars tests the leaf cases of the harvester.
func TestHarvestHosts_Scalars(t *testing.T) {
	keys := DefaultKeySet()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{name: "plain string", value: "a.example.com", want: []string{"a.example.com"}},
		{name: "string is trimmed", value: "  a.example.com  ", want: []string{"a.example.com"}},
		{name: "empty string", value: "", want: []string{}},
		{name: "whitespace string", value: "   ", want: []string{}},
		{name: "number", value: float64(443), want: []string{}},
		{name: "boolean", value: true, want: []string{}},
		{name: "null", value: nil, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hostSlice(HarvestHosts(tt.value, keys)))
		})
	}
}

// TestHarvestHosts_Array tests that arrays union their elements.
func TestHarvestHosts_Array(t *testing.T) {
	keys := DefaultKeySet()

	value := []any{"a.example.com", "b.example.com", float64(1), nil, "a.example.com"}
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, hostSlice(HarvestHosts(value, keys)))
}

// TestHarvestHosts_ObjectDualStrategy tests that an object contributes both
// its recognized host-key values and hosts found by blanket descent into
// nested structure.
func TestHarvestHosts_ObjectDualStrategy(t *testing.T) {
	keys := DefaultKeySet()

	value := map[string]any{
		"fqdn": "a.example.com",
		"meta": map[string]any{
			"hostname": "b.example.com",
			"port":     float64(8080),
		},
		"destinations": []any{
			map[string]any{"host": "c.example.com"},
		},
		"comment": "not a host key, plain string is skipped",
	}

	got := hostSlice(HarvestHosts(value, keys))
	assert.Equal(t, []string{"a.example.com", "b.example.com", "c.example.com"}, got)
}

// TestHarvestHosts_HostKeyCaseInsensitive tests case-insensitive host key
// matching.
func TestHarvestHosts_HostKeyCaseInsensitive(t *testing.T) {
	keys := DefaultKeySet()

	value := map[string]any{
		"FQDN":        "a.example.com",
		"Destination": "b.example.com",
	}

	got := hostSlice(HarvestHosts(value, keys))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, got)
}

// TestHarvestHosts_HostKeyWithListValue tests that a host key holding a list
// harvests every element.
func TestHarvestHosts_HostKeyWithListValue(t *testing.T) {
	keys := DefaultKeySet()

	value := map[string]any{
		"host": []any{"a.example.com", "b.example.com"},
	}

	got := hostSlice(HarvestHosts(value, keys))
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, got)
}

// TestHarvestHosts_DeepNesting tests recall through several layers of
// unknown structure.
func TestHarvestHosts_DeepNesting(t *testing.T) {
	keys := DefaultKeySet()

	value := map[string]any{
		"level1": map[string]any{
			"level2": []any{
				map[string]any{
					"level3": map[string]any{
						"domain": "deep.example.com",
					},
				},
			},
		},
	}

	got := hostSlice(HarvestHosts(value, keys))
	assert.Equal(t, []string{"deep.example.com"}, got)
}
