// Package logger builds the zap logger the application logs through.
//
// New parses the configured level and picks a preset from it: debug gets
// the zap development config, everything else gets the production config
// with the level applied. The console format switches to the console
// encoder with colored levels for CLI use; the default json format is
// meant for the service.
//
// # Ray IDs
//
// WithRayID pulls the ray_id set by the rayid middleware out of a Fiber
// context and attaches it as a field, so every log line written while
// serving a request can be correlated with the response header.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
