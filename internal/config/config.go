// Package config loads the settings of the worddiff command.
package config

// Format selects how a diff is printed.
type Format string

// Output formats.
const (
	FormatText  Format = "text"
	FormatHTML  Format = "html"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// View selects the side shown by FormatPlain.
type View string

// Views.
const (
	ViewModified View = "modified"
	ViewOriginal View = "original"
)

// LogLevel is the minimum level written to stderr.
type LogLevel string

// Log levels.
const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// DefaultMaxTokens bounds the tokens per input.
const DefaultMaxTokens = 20000

// DefaultMaxCells bounds the LCS table, (m+1)*(n+1) ints for inputs of m and
// n tokens. 1<<24 cells is 128 MiB with 64-bit ints.
const DefaultMaxCells = 1 << 24

// Config is the top-level configuration.
type Config struct {
	// Format of the report written to stdout.
	Format Format `yaml:"format"`
	// View used by FormatPlain.
	View View `yaml:"view"`
	// LogLevel for the stderr logger.
	LogLevel LogLevel `yaml:"log_level"`
	// MaxTokens per input; zero or less disables the check.
	MaxTokens int `yaml:"max_tokens"`
	// MaxCells bounds the LCS table size; zero or less disables the check.
	MaxCells int `yaml:"max_cells"`
	// Literal treats the positional arguments as text instead of file paths.
	Literal bool `yaml:"literal"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Format:    FormatText,
		View:      ViewModified,
		LogLevel:  LogInfo,
		MaxTokens: DefaultMaxTokens,
		MaxCells:  DefaultMaxCells,
	}
}
