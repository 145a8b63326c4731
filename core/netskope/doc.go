// Package netskope fetches the private-application inventory document from
// a Netskope-style REST endpoint.
//
// The client is a thin, replaceable adapter: it performs authenticated GETs
// with a hardened transport, optionally follows cursor/offset pagination
// (configurable query parameter plus a dotted path to the next cursor inside
// each page), paces page requests with a rate limiter, and hands every page
// to the extraction engine's ingestion boundary for decoding. No retries:
// a non-2xx answer surfaces as a *TransportError carrying the status code
// and response body, and transient-failure recovery stays with the
// operator.
package netskope
