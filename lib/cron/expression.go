// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import "strconv"

// BaseKind discriminates the three forms of a [BaseExpression].
type BaseKind int

const (
	// KindAll is the wildcard "*".
	KindAll BaseKind = iota
	// KindExact is a single value.
	KindExact
	// KindRange is an inclusive range "a-b".
	KindRange
)

// BaseExpression is one clause of a field: a wildcard, a single value,
// or an inclusive range. Value holds the exact value or the range
// start; End is only meaningful for ranges.
type BaseExpression struct {
	Kind  BaseKind
	Value int
	End   int
}

// All returns the wildcard expression.
func All() BaseExpression { return BaseExpression{Kind: KindAll} }

// Exact returns an expression matching the single value v.
func Exact(v int) BaseExpression { return BaseExpression{Kind: KindExact, Value: v} }

// Range returns an expression matching start through end inclusive.
func Range(start, end int) BaseExpression {
	return BaseExpression{Kind: KindRange, Value: start, End: end}
}

func (b BaseExpression) String() string {
	switch b.Kind {
	case KindAll:
		return "*"
	case KindRange:
		return strconv.Itoa(b.Value) + "-" + strconv.Itoa(b.End)
	default:
		return strconv.Itoa(b.Value)
	}
}

// FieldExpression is one comma-separated item of a field: a base
// expression, optionally stepped. Step is zero for a plain expression.
type FieldExpression struct {
	Base BaseExpression
	Step int
}

// Plain wraps a base expression without a step.
func Plain(base BaseExpression) FieldExpression { return FieldExpression{Base: base} }

// Stepped returns base with every step-th value kept.
func Stepped(base BaseExpression, step int) FieldExpression {
	return FieldExpression{Base: base, Step: step}
}

// IsStepped reports whether the expression carries a step.
func (e FieldExpression) IsStepped() bool { return e.Step != 0 }

func (e FieldExpression) String() string {
	if !e.IsStepped() {
		return e.Base.String()
	}
	return e.Base.String() + "/" + strconv.Itoa(e.Step)
}
