package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"app-reconciler/core/artifact"
	"app-reconciler/core/database"
	"app-reconciler/core/extract"
	"app-reconciler/core/logger"
	"app-reconciler/core/netskope"
	"app-reconciler/core/server"
	"app-reconciler/core/sheet"
	"app-reconciler/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional run-history database.
	Database database.Config `mapstructure:"database"`
	// Netskope holds configuration for the cloud inventory client.
	Netskope netskope.Config `mapstructure:"netskope"`
	// Sheet holds configuration for the spreadsheet source.
	Sheet sheet.Config `mapstructure:"sheet"`
	// Extract holds the key vocabulary for the extraction engine.
	Extract extract.Config `mapstructure:"extract"`
	// Artifact holds configuration for artifact publishing and retention.
	Artifact artifact.Config `mapstructure:"artifact"`
}

// LoadConfig loads configuration from environment variables, after loading
// a .env file from the given directory when one exists.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is fine; production configures through the environment.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Register every key with its struct-tag default so AutomaticEnv sees it.
	bindDefaults(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindDefaults walks the config struct and registers each mapstructure key
// with its default tag value. Nested structs recurse with a dotted prefix;
// slice fields carry comma-separated defaults, split by viper's decode hook.
func bindDefaults(v *viper.Viper, section any, prefix string) {
	t := reflect.TypeOf(section)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindDefaults(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// An empty default still registers the key, which AutomaticEnv needs.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
