package artifact

// Config holds configuration for the artifact sink.
type Config struct {
	// Prefix is the object key prefix (folder) artifacts are published
	// under.
	Prefix string `mapstructure:"prefix" default:"runs"`

	// Keep is how many artifacts to retain under the prefix when pruning.
	// Zero or negative disables pruning.
	Keep int `mapstructure:"keep" default:"30"`
}
