// Package middleware groups the HTTP middleware used by the Fiber app.
//
// Each middleware lives in its own subpackage:
//
//   - auth: API key validation against the X-Api-Key header. An empty
//     configured key disables the check, leaving the API open.
//   - rayid: assigns every request a ray ID (UUID), stored in the context
//     locals and echoed in the X-Ray-Id response header. Incoming ray IDs
//     are honored so the ID survives proxy hops.
//
// Both are registered globally in the start command, rayid first so the
// request logger and auth rejections carry the ID.
package middleware
