package config

// ProverConfig defines configuration for the proving backend
type ProverConfig struct {
	// Backend selects the Execution Contract implementation. Only the
	// in-process development attestor is built in.
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty" validate:"omitempty,proverbackend"`
	// DefaultOutputFile is used when generate is invoked without -o.
	DefaultOutputFile string `json:"default_output_file,omitempty" yaml:"default_output_file,omitempty"`
}

// NewDefaultProverConfig creates default prover configuration
func NewDefaultProverConfig() ProverConfig {
	return ProverConfig{
		Backend:           DefaultProverBackend,
		DefaultOutputFile: DefaultProofFile,
	}
}
