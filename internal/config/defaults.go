package config

const (
	defaultMaxInputBytes   = 10_000_000
	defaultOutputExtension = ".fasta"
	defaultLogDir          = "~/.local/share/epitizer/logs"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Limits: Limits{
			MaxInputBytes: defaultMaxInputBytes,
		},
		Output: Output{
			DefaultExtension: defaultOutputExtension,
		},
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
