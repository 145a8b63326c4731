// Package loader wires features into the Fiber application.
//
// A feature is a self-contained vertical (service, handlers, routes) that
// implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Features report their own readiness through IsEnabled, typically by
// checking whether the dependencies they were constructed with are present.
// A disabled feature is skipped silently, which is how the service tolerates
// missing configuration (no inventory endpoint, no spreadsheet) instead of
// refusing to start.
//
// The Manager holds the registry: Register adds a feature, LoadAll walks
// the registry in registration order and mounts every enabled feature,
// stopping at the first load failure. The inventory, compare and
// diagnostics features all load through it.
package loader
