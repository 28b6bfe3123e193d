package main

import (
	"fmt"
	"github.com/ghodss/yaml"
	"os"
)

// Config holds the settings of the read-eval-print loop
type Config struct {
	// Prompt is printed before each input line
	Prompt string `json:"prompt"`
	// Format is the fmt verb used to print a result
	Format string `json:"format"`
	// Echo enables printing of the infix and postfix tokens
	Echo bool `json:"echo"`
	// Grouped enables printing of the expression with the
	// parentheses implied by precedence and associativity
	Grouped bool `json:"grouped"`
}

func defaultConfig() Config {
	return Config{
		Prompt: "> ",
		Format: "%g",
		Echo:   true,
	}
}

// loadConfig reads a YAML config file. Settings missing in the
// file keep their default. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
