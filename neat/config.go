package neat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Config stores the configuration parameters for a run.
type Config struct {
	Evaluator    EvaluatorConfig    `yaml:"evaluator"`
	Speciation   SpeciationConfig   `yaml:"speciation"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Network      NetworkConfig      `yaml:"network"`
}

// EvaluatorConfig holds population-level parameters.
type EvaluatorConfig struct {
	PopSize              int     `ini:"pop_size" yaml:"pop_size"`
	Seed                 int64   `ini:"seed" yaml:"seed"`       // Seeds the run's random stream
	Workers              int     `ini:"workers" yaml:"workers"` // Genomes scored in parallel; 1 scores sequentially
	FitnessThreshold     float64 `ini:"fitness_threshold" yaml:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination" yaml:"no_fitness_termination"`
}

// SpeciationConfig holds the compatibility distance coefficients and threshold.
type SpeciationConfig struct {
	C1                     float64 `ini:"c1" yaml:"c1"` // Excess coefficient
	C2                     float64 `ini:"c2" yaml:"c2"` // Disjoint coefficient
	C3                     float64 `ini:"c3" yaml:"c3"` // Average weight difference coefficient
	CompatibilityThreshold float64 `ini:"compatibility_threshold" yaml:"compatibility_threshold"`
}

// ReproductionConfig holds the mutation rates applied to every child.
type ReproductionConfig struct {
	WeightMutateRate float64 `ini:"weight_mutate_rate" yaml:"weight_mutate_rate"`
	ConnAddRate      float64 `ini:"conn_add_rate" yaml:"conn_add_rate"`
	NodeAddRate      float64 `ini:"node_add_rate" yaml:"node_add_rate"`
	ConnAddAttempts  int     `ini:"conn_add_attempts" yaml:"conn_add_attempts"`
}

// NetworkConfig holds forward pass and seed genome parameters.
type NetworkConfig struct {
	Activation    string  `ini:"activation" yaml:"activation"`
	InitialWeight float64 `ini:"initial_weight" yaml:"initial_weight"`
}

// DefaultConfig returns the standard parameters.
func DefaultConfig() *Config {
	return &Config{
		Evaluator: EvaluatorConfig{
			PopSize:              100,
			Seed:                 1,
			Workers:              1,
			FitnessThreshold:     1.0,
			NoFitnessTermination: true,
		},
		Speciation: SpeciationConfig{
			C1:                     1.0,
			C2:                     1.0,
			C3:                     0.4,
			CompatibilityThreshold: 10.0,
		},
		Reproduction: ReproductionConfig{
			WeightMutateRate: 0.5,
			ConnAddRate:      0.1,
			NodeAddRate:      0.1,
			ConnAddAttempts:  10,
		},
		Network: NetworkConfig{
			Activation:    "sigmoid",
			InitialWeight: 0.5,
		},
	}
}

// LoadConfig reads a configuration file on top of DefaultConfig.
// Files ending in .yaml or .yml are read as YAML; anything else as INI
// with [Evaluator], [Speciation], [Reproduction] and [Network] sections.
// Keys missing from the file keep their default value.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
		}
	default:
		if err := loadIni(filePath, config); err != nil {
			return nil, err
		}
	}

	config.Network.Activation = strings.ToLower(strings.TrimSpace(config.Network.Activation))
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadIni(filePath string, config *Config) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	sections := []struct {
		name   string
		target interface{}
	}{
		{"Evaluator", &config.Evaluator},
		{"Speciation", &config.Speciation},
		{"Reproduction", &config.Reproduction},
		{"Network", &config.Network},
	}
	for _, s := range sections {
		if !cfg.HasSection(s.name) {
			continue
		}
		if err := cfg.Section(s.name).MapTo(s.target); err != nil {
			return fmt.Errorf("failed to map [%s] section: %w", s.name, err)
		}
	}

	config.Network.Activation = cleanIniString(config.Network.Activation)
	return nil
}

// Validate checks every parameter for a usable value.
func (c *Config) Validate() error {
	if c.Evaluator.PopSize <= 0 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if c.Evaluator.Workers < 1 {
		return fmt.Errorf("config error: workers must be at least 1")
	}
	if c.Speciation.C1 < 0 || c.Speciation.C2 < 0 || c.Speciation.C3 < 0 {
		return fmt.Errorf("config error: compatibility coefficients cannot be negative")
	}
	if c.Speciation.CompatibilityThreshold < 0 {
		return fmt.Errorf("config error: compatibility_threshold cannot be negative")
	}
	rates := []struct {
		name  string
		value float64
	}{
		{"weight_mutate_rate", c.Reproduction.WeightMutateRate},
		{"conn_add_rate", c.Reproduction.ConnAddRate},
		{"node_add_rate", c.Reproduction.NodeAddRate},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("config error: %s must be between 0 and 1", r.name)
		}
	}
	if c.Reproduction.ConnAddAttempts < 0 {
		return fmt.Errorf("config error: conn_add_attempts cannot be negative")
	}
	if _, err := GetActivation(c.Network.Activation); err != nil {
		return fmt.Errorf("config error: invalid activation '%s', must be one of %s",
			c.Network.Activation, strings.Join(ActivationNames(), ", "))
	}
	return nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
