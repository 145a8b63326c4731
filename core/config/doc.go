// Package config provides configuration management for the reconciler.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: connection details for the optional run-history database
//   - Netskope: inventory endpoint, auth header/token, pagination and pacing
//   - Sheet: spreadsheet path, worksheet and name-column selectors
//   - Extract: the key vocabulary of the extraction engine
//   - Artifact: publishing prefix and retention
//
// Environment variables map to nested keys by joining with underscores, so
// NETSKOPE_ENDPOINT sets netskope.endpoint and SHEET_HAS_HEADER sets
// sheet.has_header. Defaults come from the 'default' struct tags; list
// values are comma separated.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
