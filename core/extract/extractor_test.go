package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, raw string) any {
	t.Helper()
	doc, err := DecodeDocument([]byte(raw))
	require.NoError(t, err)
	return doc
}

// TestExtract_FirstSpellingWinsHostsUnion tests that two occurrences whose
// names normalize identically collapse into one entity with the first-seen
// spelling and the union of both host sets.
func TestExtract_FirstSpellingWinsHostsUnion(t *testing.T) {
	doc := mustDecode(t, `{"apps":[
		{"name":"App One","fqdn":"a.example.com"},
		{"name":"app one","domain":"b.example.com"}
	]}`)

	entities := Extract(doc, DefaultKeySet(), true)
	require.Len(t, entities, 1)
	assert.Equal(t, "App One", entities[0].Name)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, entities[0].Hosts)
}

// TestExtract_EmptyDocument tests that an empty object yields zero entities
// and no error.
func TestExtract_EmptyDocument(t *testing.T) {
	doc := mustDecode(t, `{}`)

	entities := Extract(doc, DefaultKeySet(), true)
	assert.Empty(t, entities)
}

// TestExtract_TopLevelArray tests extraction from a document whose top level
// is an array.
func TestExtract_TopLevelArray(t *testing.T) {
	doc := mustDecode(t, `[
		{"app_name":"Beta"},
		{"app_name":"Alpha"}
	]`)

	entities := Extract(doc, DefaultKeySet(), false)
	require.Len(t, entities, 2)
	assert.Equal(t, "Alpha", entities[0].Name)
	assert.Equal(t, "Beta", entities[1].Name)
}

// TestExtract_SortedByNormalizedName tests that output order follows the
// normalized name, not the raw spelling or document order.
func TestExtract_SortedByNormalizedName(t *testing.T) {
	doc := mustDecode(t, `{"data":[
		{"name":"  zulu "},
		{"name":"ALPHA"},
		{"name":"Mike"}
	]}`)

	entities := Extract(doc, DefaultKeySet(), false)
	require.Len(t, entities, 3)
	assert.Equal(t, []string{"ALPHA", "Mike", "zulu"}, Names(entities))
}

// TestExtract_NameKeyPriority tests that name keys resolve in their
// configured priority order when an object carries several.
func TestExtract_NameKeyPriority(t *testing.T) {
	doc := mustDecode(t, `{"items":[
		{"name":"fallback","app_name":"Primary"}
	]}`)

	entities := Extract(doc, DefaultKeySet(), false)
	require.Len(t, entities, 1)
	assert.Equal(t, "Primary", entities[0].Name)
}

// TestExtract_NameKeyFallthrough tests that an unusable value under a higher
// priority name key falls through to the next one.
func TestExtract_NameKeyFallthrough(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty string", raw: `{"app_name":"","name":"Kept"}`, want: "Kept"},
		{name: "whitespace string", raw: `{"app_name":"   ","name":"Kept"}`, want: "Kept"},
		{name: "number value", raw: `{"app_name":42,"name":"Kept"}`, want: "Kept"},
		{name: "object value", raw: `{"app_name":{"x":1},"name":"Kept"}`, want: "Kept"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := Extract(mustDecode(t, tt.raw), DefaultKeySet(), false)
			require.Len(t, entities, 1)
			assert.Equal(t, tt.want, entities[0].Name)
		})
	}
}

// TestExtract_NameKeyCaseInsensitive tests case-insensitive name key
// matching while the value spelling is preserved.
func TestExtract_NameKeyCaseInsensitive(t *testing.T) {
	doc := mustDecode(t, `{"apps":[{"App_Name":"Mixed Case App"}]}`)

	entities := Extract(doc, DefaultKeySet(), false)
	require.Len(t, entities, 1)
	assert.Equal(t, "Mixed Case App", entities[0].Name)
}

// TestExtract_NoNameNoEntity tests that objects without a qualifying name
// key are not entities, whatever else they carry.
func TestExtract_NoNameNoEntity(t *testing.T) {
	doc := mustDecode(t, `{"things":[
		{"fqdn":"a.example.com"},
		{"id":7,"active":true},
		{"label":"not a recognized key"}
	]}`)

	entities := Extract(doc, DefaultKeySet(), true)
	assert.Empty(t, entities)
}

// TestExtract_EntityHostAttribution tests that with host collection enabled
// an entity picks up hosts from its own host keys and container keys, but
// not from unrelated sibling keys.
func TestExtract_EntityHostAttribution(t *testing.T) {
	doc := mustDecode(t, `{"apps":[{
		"app_name":"CRM",
		"fqdn":"crm.example.com",
		"destinations":[
			{"host":"crm-eu.example.com","port":443},
			{"host":"crm-us.example.com","port":443}
		],
		"description":"customer database"
	}]}`)

	entities := Extract(doc, DefaultKeySet(), true)
	require.Len(t, entities, 1)
	assert.Equal(t, "CRM", entities[0].Name)
	assert.Equal(t, []string{"crm-eu.example.com", "crm-us.example.com", "crm.example.com"}, entities[0].Hosts)
}

// TestExtract_NamesOnlyMode tests that host collection can be switched off,
// leaving empty host sets.
func TestExtract_NamesOnlyMode(t *testing.T) {
	doc := mustDecode(t, `{"apps":[{"name":"CRM","fqdn":"crm.example.com"}]}`)

	entities := Extract(doc, DefaultKeySet(), false)
	require.Len(t, entities, 1)
	assert.Equal(t, "CRM", entities[0].Name)
	assert.NotNil(t, entities[0].Hosts)
	assert.Empty(t, entities[0].Hosts)
}

// TestExtract_NestedEntities tests that entity lists embedded inside another
// entity's payload are still discovered.
func TestExtract_NestedEntities(t *testing.T) {
	doc := mustDecode(t, `{"app_name":"Outer","related":{"apps":[
		{"app_name":"Inner One"},
		{"app_name":"Inner Two"}
	]}}`)

	entities := Extract(doc, DefaultKeySet(), false)
	assert.Equal(t, []string{"Inner One", "Inner Two", "Outer"}, Names(entities))
}

// TestExtract_SingleNameKeyInvariant tests that when an object carries
// exactly one recognized name key, the extracted name does not depend on the
// object's other keys.
func TestExtract_SingleNameKeyInvariant(t *testing.T) {
	a := mustDecode(t, `{"name":"Stable","x":1,"y":2,"z":3}`)
	b := mustDecode(t, `{"z":3,"y":2,"x":1,"name":"Stable"}`)

	keys := DefaultKeySet()
	assert.Equal(t, Extract(a, keys, false), Extract(b, keys, false))
}

// TestExtract_CustomKeySet tests extraction against a non-default
// vocabulary.
func TestExtract_CustomKeySet(t *testing.T) {
	keys := NewKeySet([]string{"title"}, []string{"url"}, nil)

	doc := mustDecode(t, `{"entries":[{"title":"Wiki","url":"wiki.internal"}]}`)

	entities := Extract(doc, keys, true)
	require.Len(t, entities, 1)
	assert.Equal(t, "Wiki", entities[0].Name)
	assert.Equal(t, []string{"wiki.internal"}, entities[0].Hosts)
}

// TestConfig_KeySetDefaults tests that an empty config falls back to the
// default vocabulary.
func TestConfig_KeySetDefaults(t *testing.T) {
	keys := Config{}.KeySet()

	doc := mustDecode(t, `{"apps":[{"app_name":"CRM","fqdn":"crm.example.com"}]}`)
	entities := Extract(doc, keys, true)
	require.Len(t, entities, 1)
	assert.Equal(t, "CRM", entities[0].Name)
	assert.Equal(t, []string{"crm.example.com"}, entities[0].Hosts)
}
