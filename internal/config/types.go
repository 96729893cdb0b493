package config

// DisplayMode selects how the summary renders slider values.
type DisplayMode string

const (
	DisplayVisual DisplayMode = "visual"
	DisplayText   DisplayMode = "text"
)

// Config is the careaid configuration, corresponding to careaid.yml.
type Config struct {
	Content     string      `yaml:"content" koanf:"content"`
	PrintDir    string      `yaml:"print_dir" koanf:"print_dir"`
	DisplayMode DisplayMode `yaml:"display_mode" koanf:"display_mode"`
	StartStep   int         `yaml:"start_step" koanf:"start_step"`
	LogFile     string      `yaml:"log_file" koanf:"log_file"`
	LogLevel    string      `yaml:"log_level" koanf:"log_level"`
}

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "careaid.yml"

// EnvPrefix prefixes environment overrides, e.g. CAREAID_PRINT_DIR.
const EnvPrefix = "CAREAID_"

// DefaultConfig returns the built-in settings: embedded content, prints in
// the working directory, visual mode, first step, no log file.
func DefaultConfig() *Config {
	return &Config{
		PrintDir:    ".",
		DisplayMode: DisplayVisual,
		StartStep:   1,
		LogLevel:    "info",
	}
}
