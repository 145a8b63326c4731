package extract

// Default key vocabulary, tuned for Netskope-style private application
// payloads.
var (
	// DefaultNameKeys are the object keys that mark an entity, in priority
	// order.
	DefaultNameKeys = []string{"app_name", "application_name", "app", "name"}

	// DefaultHostKeys are the leaf keys whose values carry hostnames.
	DefaultHostKeys = []string{"fqdn", "hostname", "host", "domain", "destination", "destination_fqdn"}

	// DefaultContainerKeys are the keys whose values are swept for hostnames
	// during entity harvesting even though they are not host leaf keys
	// themselves.
	DefaultContainerKeys = []string{"destinations", "resources"}
)

// Config holds the configurable key vocabulary for the extraction engine.
type Config struct {
	// NameKeys are the object keys that mark an entity, in priority order.
	NameKeys []string `mapstructure:"name_keys" default:"app_name,application_name,app,name"`

	// HostKeys are the object keys whose values carry hostnames.
	HostKeys []string `mapstructure:"host_keys" default:"fqdn,hostname,host,domain,destination,destination_fqdn"`

	// ContainerKeys are the object keys swept for hostnames during entity
	// harvesting in addition to HostKeys.
	ContainerKeys []string `mapstructure:"container_keys" default:"destinations,resources"`
}

// KeySet compiles the configured vocabulary, falling back to the defaults
// for any list left empty.
func (c Config) KeySet() KeySet {
	nameKeys := c.NameKeys
	if len(nameKeys) == 0 {
		nameKeys = DefaultNameKeys
	}
	hostKeys := c.HostKeys
	if len(hostKeys) == 0 {
		hostKeys = DefaultHostKeys
	}
	containerKeys := c.ContainerKeys
	if len(containerKeys) == 0 {
		containerKeys = DefaultContainerKeys
	}
	return NewKeySet(nameKeys, hostKeys, containerKeys)
}
