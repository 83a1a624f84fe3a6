package wallet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stardustlabs/walletbridge/log"
)

// Options is the YAML configuration shape for a Manager deployment.
type Options struct {
	// StoragePath is forwarded to the engine when the session is built; the
	// library itself never touches it.
	StoragePath string `yaml:"storagePath"`
	LogLevel    string `yaml:"logLevel"`
	EventBuffer int    `yaml:"eventBuffer"`
}

// Level resolves the configured log level, defaulting to info when unset.
func (o Options) Level() (log.Level, error) {
	if o.LogLevel == "" {
		return log.LevelInfo, nil
	}

	return log.ParseLevel(o.LogLevel)
}

// LoadOptions reads and validates a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("reading options file: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parsing options file: %w", err)
	}

	if _, err := opts.Level(); err != nil {
		return Options{}, fmt.Errorf("validating options: %w", err)
	}

	return opts, nil
}
