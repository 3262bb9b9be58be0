// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "slices"

// Expand resolves a field's expressions into the ascending,
// duplicate-free set of values they match within [minimum, maximum].
//
// Only range end points are checked against maximum; exact values and
// range starts below minimum pass through unchanged. A range whose
// start exceeds its end matches nothing, and the resulting empty set is
// returned without error.
func Expand(expressions []FieldExpression, minimum, maximum int) ([]int, error) {
	seen := make(map[int]struct{})
	for _, expression := range expressions {
		values, err := expandExpression(expression, minimum, maximum)
		if err != nil {
			return nil, err
		}
		for _, value := range values {
			seen[value] = struct{}{}
		}
	}

	result := make([]int, 0, len(seen))
	for value := range seen {
		result = append(result, value)
	}
	slices.Sort(result)
	return result, nil
}

func expandExpression(expression FieldExpression, minimum, maximum int) ([]int, error) {
	if !expression.IsStepped() {
		return expandBase(expression.Base, minimum, maximum)
	}

	step := expression.Step
	if step < 1 {
		return nil, &RangeError{What: "step", Value: step, Minimum: 1, Maximum: maximum}
	}

	switch expression.Base.Kind {
	case KindAll:
		return steppedValues(minimum, maximum, step), nil
	case KindExact:
		return steppedValues(expression.Base.Value, maximum, step), nil
	default:
		values, err := expandBase(expression.Base, minimum, maximum)
		if err != nil {
			return nil, err
		}
		kept := values[:0]
		for index, value := range values {
			if index%step == 0 {
				kept = append(kept, value)
			}
		}
		return kept, nil
	}
}

func expandBase(base BaseExpression, minimum, maximum int) ([]int, error) {
	switch base.Kind {
	case KindAll:
		return steppedValues(minimum, maximum, 1), nil
	case KindExact:
		return []int{base.Value}, nil
	default:
		if base.Value > maximum {
			return nil, &RangeError{What: "range start", Value: base.Value, Minimum: minimum, Maximum: maximum}
		}
		if base.End > maximum {
			return nil, &RangeError{What: "range end", Value: base.End, Minimum: minimum, Maximum: maximum}
		}
		return steppedValues(base.Value, base.End, 1), nil
	}
}

// steppedValues returns from, from+step, ... up to and including last.
// Empty when from > last. A step wider than the remaining span ends the
// sequence instead of overflowing.
func steppedValues(from, last, step int) []int {
	var values []int
	for value := from; value <= last; value += step {
		values = append(values, value)
		if step > last-value {
			break
		}
	}
	return values
}
