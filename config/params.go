package config

// DefaultLogLevel is the log threshold used when none is configured.
const DefaultLogLevel = 1

// DefaultUsePseudoRand keeps runs nondeterministic unless asked otherwise.
const DefaultUsePseudoRand = false

// Params holds the settings shared by the logger and the random source.
type Params struct {
	// LogLevel is the console threshold: messages with level <= LogLevel are written.
	LogLevel int `yaml:"log_level"`
	// UsePseudoRand starts the random source from its fixed default seed,
	// making runs reproducible.
	UsePseudoRand bool `yaml:"use_pseudorand"`
}

// Default returns Params with every field at its documented default.
func Default() Params {
	return Params{
		LogLevel:      DefaultLogLevel,
		UsePseudoRand: DefaultUsePseudoRand,
	}
}
