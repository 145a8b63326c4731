// Package inventory serves the extracted cloud application inventory.
//
// The service fetches every page of the Netskope private-apps listing, runs
// the schema-agnostic extraction engine over the combined document (hosts
// included), and holds the result in a TTL cache. Concurrent cold-cache
// requests share one upstream fetch through singleflight, so a burst of
// API callers costs a single round of page requests.
//
// # HTTP Endpoints
//
//   - GET /inventory/applications : extracted entity table as JSON (supports ?refresh=true).
//   - GET /inventory/applications.csv : the same table as a CSV download.
package inventory
