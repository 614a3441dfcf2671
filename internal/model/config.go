package model

// Config holds the settings for one conversion run.
type Config struct {
	Tag          string `yaml:"tag"`           // appended to every post's tag list
	ShowOriginal bool   `yaml:"show_original"` // emit the backlink to the original post
	OutputDir    string `yaml:"output_dir"`
	Verbose      bool   `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults, matching the CLI flag
// defaults.
func DefaultConfig() *Config {
	return &Config{
		Tag:          "legacy-blogger",
		ShowOriginal: true,
		OutputDir:    ".",
		Verbose:      false,
	}
}
