package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("adjust_rate", createAdjustRate)
	registry.Register("extend_horizon", createExtendHorizon)
	registry.Register("postpone_retirement", createPostponeRetirement)
	registry.Register("scale_contribution", createScaleContribution)
	registry.Register("set_step_up", createSetStepUp)
	registry.Register("set_currency_risk", createSetCurrencyRisk)
	registry.Register("set_frequency", createSetFrequency)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "adjust_rate:delta=1.5"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Factory functions for each transform

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func intParam(transform string, params map[string]string, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func createAdjustRate(params map[string]string) (ScenarioTransform, error) {
	delta, err := decimalParam("adjust_rate", params, "delta")
	if err != nil {
		return nil, err
	}
	return &AdjustRate{DeltaPercent: delta}, nil
}

func createExtendHorizon(params map[string]string) (ScenarioTransform, error) {
	years, err := intParam("extend_horizon", params, "years")
	if err != nil {
		return nil, err
	}
	return &ExtendHorizon{Years: years}, nil
}

func createPostponeRetirement(params map[string]string) (ScenarioTransform, error) {
	years, err := intParam("postpone_retirement", params, "years")
	if err != nil {
		return nil, err
	}
	return &PostponeRetirement{Years: years}, nil
}

func createScaleContribution(params map[string]string) (ScenarioTransform, error) {
	factor, err := decimalParam("scale_contribution", params, "factor")
	if err != nil {
		return nil, err
	}
	return &ScaleContribution{Factor: factor}, nil
}

func createSetStepUp(params map[string]string) (ScenarioTransform, error) {
	pct, err := decimalParam("set_step_up", params, "percent")
	if err != nil {
		return nil, err
	}
	return &SetStepUp{Percent: pct}, nil
}

func createSetCurrencyRisk(params map[string]string) (ScenarioTransform, error) {
	pct, err := decimalParam("set_currency_risk", params, "percent")
	if err != nil {
		return nil, err
	}
	return &SetCurrencyRisk{Percent: pct}, nil
}

func createSetFrequency(params map[string]string) (ScenarioTransform, error) {
	freq, ok := params["frequency"]
	if !ok {
		return nil, fmt.Errorf("set_frequency requires 'frequency' parameter")
	}
	return &SetFrequency{Frequency: domain.Frequency(strings.ToLower(freq))}, nil
}
