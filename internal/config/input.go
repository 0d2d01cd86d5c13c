package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/calculation"
	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var one = decimal.NewFromInt(1)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file (YAML, TOML or JSON, by extension) over the default policy
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	return ip.LoadFromFileWithPolicy(filename, domain.DefaultPolicy())
}

// LoadFromFileWithPolicy loads a scenario file whose policy block overrides base
func (ip *InputParser) LoadFromFileWithPolicy(filename string, base domain.Policy) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, formatFromExtension(filename), base)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// LoadPolicyFromFile reads only the policy block of a scenario file over the default
// policy. Scenarios in the file are ignored, so a file holding just a policy is valid.
func (ip *InputParser) LoadPolicyFromFile(filename string) (domain.Policy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Policy{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, formatFromExtension(filename), domain.DefaultPolicy())
	if err != nil {
		return domain.Policy{}, err
	}
	if err := validatePolicy(&config.Policy); err != nil {
		return domain.Policy{}, fmt.Errorf("policy validation failed: %w", err)
	}
	return config.Policy, nil
}

// Parse decodes raw scenario data in the given format ("yaml", "toml" or "json").
// Keys absent from the policy block keep the value from base.
func (ip *InputParser) Parse(data []byte, format string, base domain.Policy) (*domain.Configuration, error) {
	config := domain.Configuration{Policy: base}
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		if _, err := toml.Decode(string(data), &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario file format %q", format)
	}
	return &config, nil
}

func formatFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// ValidateConfiguration validates the policy and every scenario, replacing each
// scenario with its normalized form
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := validatePolicy(&config.Policy); err != nil {
		return fmt.Errorf("policy validation failed: %w", err)
	}
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	validator := calculation.NewScenarioValidator(config.Policy)
	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		normalized, err := validator.Validate(scenario)
		if err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
		if normalized.Name == "" {
			return fmt.Errorf("scenario %d validation failed: %w", i, domain.NewValidationError("name", "is required"))
		}
		if seen[normalized.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, normalized.Name)
		}
		seen[normalized.Name] = true
		config.Scenarios[i] = normalized
	}
	return nil
}

func validatePolicy(p *domain.Policy) error {
	if p.Limits.MaxHorizonYears <= 0 {
		return domain.NewValidationError("policy.limits.max_horizon_years", "must be positive")
	}
	if !p.Limits.MaxMoney.IsPositive() {
		return domain.NewValidationError("policy.limits.max_money", "must be positive")
	}
	if !p.Retirement.RequiredCorpusMultiplier.IsPositive() {
		return domain.NewValidationError("policy.retirement.required_corpus_multiplier", "must be positive")
	}
	if p.International.BlendedHomeWeight.IsNegative() || p.International.BlendedHomeWeight.GreaterThan(one) {
		return domain.NewValidationError("policy.international.blended_home_weight", "must be between 0 and 1")
	}
	for _, asset := range p.Crypto.Assets {
		if asset.Name == "" {
			return domain.NewValidationError("policy.crypto.assets.name", "is required")
		}
		if asset.AllocationWeight.IsNegative() || asset.AllocationWeight.GreaterThan(one) {
			return domain.NewValidationError("policy.crypto.assets."+asset.Name+".allocation_weight", "must be between 0 and 1")
		}
	}
	return nil
}
