package main

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Value is a stack cell: either a 64-bit integer or a 64-bit float.
type Value struct {
	i     int64
	f     float64
	float bool
}

func intValue(i int64) Value     { return Value{i: i} }
func floatValue(f float64) Value { return Value{f: f, float: true} }

// IsFloat reports whether v holds a float rather than an integer.
func (v Value) IsFloat() bool { return v.float }

// Float returns v as a float.
func (v Value) Float() float64 {
	if v.float {
		return v.f
	}
	return float64(v.i)
}

func (v Value) isZero() bool {
	if v.float {
		return v.f == 0
	}
	return v.i == 0
}

// String formats integers in decimal, and floats so that they always read
// back as floats: 2.5, 3.0, 1.0e+20, Infinity, NaN.
func (v Value) String() string {
	if !v.float {
		return strconv.FormatInt(v.i, 10)
	}
	f := v.f
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 && !strings.Contains(s[:i], ".") {
		s = s[:i] + ".0" + s[i:]
	}
	return s
}

// parseNumber tries an integer parse, then a float parse. Integers take Go
// literal syntax: optional sign, 0x 0o 0b prefixes, and _ separators.
// Tokens without any digit, like inf or nan, are never numbers; floats too
// large to represent read as infinities.
func parseNumber(token string) (Value, bool) {
	if n, err := strconv.ParseInt(token, 0, 64); err == nil {
		return intValue(n), true
	}
	if n, err := strconv.ParseInt(token, 10, 64); err == nil {
		return intValue(n), true // leading zeros, like 08
	}
	if strings.IndexFunc(token, unicode.IsDigit) < 0 {
		return Value{}, false
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return floatValue(f), true
	}
	return Value{}, false
}

//// Arithmetic
// Integers combine into integers, wrapping around on overflow; any float
// operand makes a float result.

func addValues(a, b Value) (Value, error) {
	if a.float || b.float {
		return floatValue(a.Float() + b.Float()), nil
	}
	return intValue(a.i + b.i), nil
}

func subValues(a, b Value) (Value, error) {
	if a.float || b.float {
		return floatValue(a.Float() - b.Float()), nil
	}
	return intValue(a.i - b.i), nil
}

func mulValues(a, b Value) (Value, error) {
	if a.float || b.float {
		return floatValue(a.Float() * b.Float()), nil
	}
	return intValue(a.i * b.i), nil
}

// divValues truncates integer quotients toward zero; only integer division
// by zero is an error, float division follows IEEE-754.
func divValues(a, b Value) (Value, error) {
	if a.float || b.float {
		return floatValue(a.Float() / b.Float()), nil
	}
	if b.i == 0 {
		return Value{}, errDivisionByZero
	}
	return intValue(a.i / b.i), nil
}
