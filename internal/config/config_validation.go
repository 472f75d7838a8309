package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants shared by every binary.
//
// Per-binary requirements (the server needs a DSN and a sign key, the client
// needs a server URL) are enforced where the config view is built, so the
// shared validation stays permissive.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.CachePath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
