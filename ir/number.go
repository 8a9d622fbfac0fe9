package ir

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders f in decimal notation with at least one fractional
// digit, switching to exponent notation outside [1e-6, 1e21).
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// FromNumberText creates a number node from JSON number text. Integers
// outside int64 stay exact as big integers; floats must fit a float64
// without overflowing or underflowing to zero.
func FromNumberText(text string) (*Node, error) {
	if !strings.ContainsAny(text, ".eE") {
		i, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return FromInt(i), nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return FromBigInt(strings.TrimPrefix(text, "+")), nil
		}
		return nil, err
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, ErrNumberRange
		}
		return nil, err
	}
	if f == 0 && nonZeroMantissa(text) {
		return nil, ErrNumberRange
	}
	return FromFloat(f), nil
}

func nonZeroMantissa(text string) bool {
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		text = text[:i]
	}
	return strings.ContainsAny(text, "123456789")
}
