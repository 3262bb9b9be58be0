// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"fmt"
	"strconv"
)

// scanner is a byte cursor over one crontab line with the handful of
// primitives the field grammar is built from. Every primitive either
// consumes its match and returns ok, or leaves the position where it
// was and returns !ok.
//
// The scanner remembers the failure that got furthest into the input.
// Ordered alternatives backtrack freely, so the deepest failure is the
// most useful one to report once the whole parse gives up.
type scanner struct {
	input string
	pos   int

	failOffset int
	failReason string
}

func newScanner(input string) *scanner {
	return &scanner{input: input, failOffset: -1}
}

func (s *scanner) done() bool { return s.pos >= len(s.input) }

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.input[s.pos]
}

// failAt records a failure at offset unless a deeper one is already
// known. Later failures at the same offset replace earlier ones: the
// last alternative tried is usually the most general description.
func (s *scanner) failAt(offset int, reason string) {
	if offset >= s.failOffset {
		s.failOffset = offset
		s.failReason = reason
	}
}

// parseError converts the deepest recorded failure into a ParseError.
func (s *scanner) parseError(field Field) *ParseError {
	offset, reason := s.failOffset, s.failReason
	if offset < 0 {
		offset, reason = s.pos, "invalid syntax"
	}
	return &ParseError{Field: field, Input: s.input, Offset: offset, Reason: reason}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

// skipSpace consumes whitespace and reports how many bytes it skipped.
func (s *scanner) skipSpace() int {
	start := s.pos
	for !s.done() && isSpace(s.peek()) {
		s.pos++
	}
	return s.pos - start
}

// afterSpace reports whether the cursor sits at the end of input, on
// whitespace, or just past whitespace. Fields must be separated this
// way.
func (s *scanner) afterSpace() bool {
	if s.done() || isSpace(s.peek()) {
		return true
	}
	return s.pos > 0 && isSpace(s.input[s.pos-1])
}

// literal consumes c if it is the next byte. It records no failure:
// callers decide whether a missing literal is an error or just the end
// of an optional construct.
func (s *scanner) literal(c byte) bool {
	if s.peek() != c {
		return false
	}
	s.pos++
	return true
}

// integer consumes a decimal number with optional surrounding
// whitespace.
func (s *scanner) integer() (int, bool) {
	start := s.pos
	s.skipSpace()
	digits := s.pos
	for !s.done() && isDigit(s.peek()) {
		s.pos++
	}
	if s.pos == digits {
		s.failAt(digits, "expected number")
		s.pos = start
		return 0, false
	}
	value, err := strconv.Atoi(s.input[digits:s.pos])
	if err != nil {
		s.failAt(digits, fmt.Sprintf("malformed number %q", s.input[digits:s.pos]))
		s.pos = start
		return 0, false
	}
	s.skipSpace()
	return value, true
}

// dayAlias consumes a weekday name such as MON, with optional
// surrounding whitespace. The whole run of letters must be a known
// alias, so MONDAY is rejected rather than read as MON.
func (s *scanner) dayAlias() (int, bool) {
	start := s.pos
	s.skipSpace()
	word := s.pos
	for !s.done() && isLetter(s.peek()) {
		s.pos++
	}
	name := s.input[word:s.pos]
	if name == "" {
		s.failAt(word, "expected number or day alias")
		s.pos = start
		return 0, false
	}
	value, ok := DayAlias(name)
	if !ok {
		s.failAt(word, fmt.Sprintf("unknown day alias %q", name))
		s.pos = start
		return 0, false
	}
	s.skipSpace()
	return value, true
}

// attempt runs parse and rewinds the cursor if it fails.
func attempt[T any](s *scanner, parse func(*scanner) (T, bool)) (T, bool) {
	start := s.pos
	value, ok := parse(s)
	if !ok {
		s.pos = start
	}
	return value, ok
}

// alternatives tries each option in order and returns the first match.
// Order matters: an earlier option shadows any later one that would
// match a prefix of the same text.
func alternatives[T any](s *scanner, options ...func(*scanner) (T, bool)) (T, bool) {
	for _, option := range options {
		if value, ok := attempt(s, option); ok {
			return value, true
		}
	}
	var zero T
	return zero, false
}

// separated parses one or more items separated by the separator byte.
// A separator that is not followed by an item fails the whole list.
func separated[T any](s *scanner, separator byte, item func(*scanner) (T, bool)) ([]T, bool) {
	start := s.pos
	first, ok := attempt(s, item)
	if !ok {
		return nil, false
	}
	items := []T{first}
	for s.literal(separator) {
		next, ok := attempt(s, item)
		if !ok {
			s.pos = start
			return nil, false
		}
		items = append(items, next)
	}
	return items, true
}
