// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

// fieldParser implements the field grammar for one field:
//
//	field_list := field_expr (',' field_expr)*
//	field_expr := stepped | base
//	stepped    := base '/' integer ['-' unit]
//	base       := '*' | range | exact
//	range      := unit '-' unit
//	exact      := unit
//	unit       := integer | day_alias    (day_alias only for day-of-week)
//
// The alternation order is part of the grammar. "*" is tried before
// range and exact, and stepped before plain, so that "a/b" is read as a
// step and not as the value a followed by junk.
type fieldParser struct {
	field Field
}

// ParseField parses the text of a single field into its expressions.
// Day aliases are accepted only when field is DayOfWeek. The whole text
// must be consumed.
func ParseField(text string, field Field) ([]FieldExpression, error) {
	s := newScanner(text)
	s.skipSpace()
	expressions, ok := fieldParser{field: field}.list(s)
	if !ok {
		return nil, s.parseError(field)
	}
	s.skipSpace()
	if !s.done() {
		s.failAt(s.pos, "unexpected trailing input")
		return nil, s.parseError(field)
	}
	return expressions, nil
}

func (p fieldParser) list(s *scanner) ([]FieldExpression, bool) {
	return separated(s, ',', p.expression)
}

func (p fieldParser) expression(s *scanner) (FieldExpression, bool) {
	return alternatives(s, p.stepped, p.plain)
}

func (p fieldParser) plain(s *scanner) (FieldExpression, bool) {
	base, ok := p.base(s)
	return Plain(base), ok
}

// stepped parses base '/' step. An exact base may carry an upper end
// after the step ("10/5-40"), which reads as the range 10-40 stepped
// by 5.
func (p fieldParser) stepped(s *scanner) (FieldExpression, bool) {
	base, ok := p.base(s)
	if !ok || !s.literal('/') {
		return FieldExpression{}, false
	}
	stepOffset := s.pos
	step, ok := s.integer()
	if !ok {
		return FieldExpression{}, false
	}
	if step == 0 {
		s.failAt(stepOffset, "step must be positive")
		return FieldExpression{}, false
	}
	if base.Kind == KindExact && s.literal('-') {
		end, ok := p.unit(s)
		if !ok {
			return FieldExpression{}, false
		}
		base = Range(base.Value, end)
	}
	return Stepped(base, step), true
}

func (p fieldParser) base(s *scanner) (BaseExpression, bool) {
	return alternatives(s, p.all, p.rangeExpression, p.exact)
}

func (p fieldParser) all(s *scanner) (BaseExpression, bool) {
	if !s.literal('*') {
		s.failAt(s.pos, "expected '*'")
		return BaseExpression{}, false
	}
	return All(), true
}

func (p fieldParser) rangeExpression(s *scanner) (BaseExpression, bool) {
	start, ok := p.unit(s)
	if !ok || !s.literal('-') {
		return BaseExpression{}, false
	}
	end, ok := p.unit(s)
	if !ok {
		return BaseExpression{}, false
	}
	return Range(start, end), true
}

func (p fieldParser) exact(s *scanner) (BaseExpression, bool) {
	value, ok := p.unit(s)
	if !ok {
		return BaseExpression{}, false
	}
	return Exact(value), true
}

func (p fieldParser) unit(s *scanner) (int, bool) {
	if p.field != DayOfWeek {
		return s.integer()
	}
	return alternatives(s, (*scanner).integer, (*scanner).dayAlias)
}
