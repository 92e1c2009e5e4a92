package config

// EngineConfig holds settings for move resolution.
type EngineConfig struct {
	// Strict adds line-of-sight and exact piece-shape checks to origin
	// search and rejects boards where more than one piece qualifies.
	Strict bool `yaml:"strict"`
}

// NewEngineConfig creates an EngineConfig with default values.
// The default resolver uses only the coarse candidate filters.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{}
}
