// Package extract implements the schema-agnostic extraction engine: given an
// arbitrarily nested, heterogeneously shaped JSON document, it finds every
// entity record (an application name plus, optionally, a set of destination
// hostnames) without assuming a fixed schema.
//
// # Approach
//
// The engine is a depth-first walk over the decoded document tree, expressed
// as a type switch over the six decoded JSON shapes (null, boolean, number,
// string, array, object). An object counts as an entity when one of the
// configured name keys holds a non-empty string. Hostnames are gathered by a
// dual strategy: targeted lookup under a recognized set of host-bearing leaf
// keys, combined with blanket recursive descent through nested objects and
// arrays, so hosts buried in unknown substructure are still found.
//
// Entities that share a normalized name are merged into one record: hosts are
// unioned and the first-seen raw spelling is kept for display. Output is
// always sorted by normalized name, so extraction over the same document is
// deterministic across runs and platforms.
//
// # Limits
//
// Extraction is heuristic. It does not guarantee total recall on arbitrary
// schemas, and in irregular payloads a host can be attributed to an outer
// entity when entity lists nest inside each other. Both are accepted
// trade-offs for working against unknown upstream shapes.
//
// # Boundaries
//
// The walk itself never fails on well-formed JSON. Malformed payloads are
// rejected at the ingestion boundary by DecodeDocument with a *ParseError.
package extract
