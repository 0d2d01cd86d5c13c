package transform

import (
	"fmt"

	"github.com/jitenkr2030/INR100-APP-sub000/internal/domain"
)

// ScenarioTransform defines the interface for all scenario transformations.
// Transforms are composable operations that modify scenarios in predictable ways,
// enabling what-if comparison and interactive exploration.
type ScenarioTransform interface {
	// Apply transforms a base scenario and returns a new modified scenario.
	// The base is never mutated.
	Apply(base *domain.ScenarioInput) (*domain.ScenarioInput, error)

	// Name returns a short identifier for this transform (e.g., "adjust_rate").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform can be applied to base without applying it.
	Validate(base *domain.ScenarioInput) error
}

// ApplyTransforms applies a sequence of transforms to a base scenario.
// Transforms are applied in order, with each transform receiving the output of the previous one.
// Returns an error if any transform fails to apply.
func ApplyTransforms(base *domain.ScenarioInput, transforms []ScenarioTransform) (*domain.ScenarioInput, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	if len(transforms) == 0 {
		return base.DeepCopy(), nil
	}

	current := base
	for i, transform := range transforms {
		if transform == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

// requireVariant checks that base is non-nil and carries the variant its Kind names
func requireVariant(name string, base *domain.ScenarioInput) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	present := false
	switch base.Kind {
	case domain.KindCompoundInterest:
		present = base.CompoundInterest != nil
	case domain.KindSIP:
		present = base.SIP != nil
	case domain.KindRetirement:
		present = base.Retirement != nil
	case domain.KindInsurance:
		present = base.Insurance != nil
	case domain.KindGovernmentScheme:
		present = base.GovernmentScheme != nil
	case domain.KindInternational:
		present = base.International != nil
	case domain.KindESG:
		present = base.ESG != nil
	case domain.KindCrypto:
		present = base.Crypto != nil
	}
	if !present {
		return NewTransformError(name, "validate", fmt.Sprintf("scenario %q has no %s inputs", base.Name, base.Kind), nil)
	}
	return nil
}

func notApplicable(name string, kind domain.CalculatorKind) error {
	return NewTransformError(name, "validate", fmt.Sprintf("not applicable to %s scenarios", kind), nil)
}
