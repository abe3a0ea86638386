// Package validate checks roster rows against the competition rules.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/models"
)

// IsEmptyText reports whether a cell counts as empty. Only absent, blank and
// whitespace-only text cells are empty; a numeric 0 is not.
func IsEmptyText(c models.RawCell) bool {
	switch c.Kind {
	case models.CellAbsent, models.CellBlank:
		return true
	case models.CellText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return false
	}
}

// AsNumber reads a cell as a number. Text is trimmed and parsed as a plain
// decimal; formulas use their cached result. ok is false when no number can
// be read.
func AsNumber(c models.RawCell) (v float64, ok bool) {
	switch c.Kind {
	case models.CellNumber:
		return c.Number, true
	case models.CellText:
		return parseDecimal(c.Text)
	case models.CellFormula:
		if v, ok := cachedNumber(c.Result); ok {
			return v, true
		}
		if s, ok := cachedText(c.Result); ok {
			return parseDecimal(s)
		}
		return 0, false
	default:
		return 0, false
	}
}

func cachedNumber(r models.FormulaResult) (float64, bool) {
	if r.Kind != models.ResultNumber {
		return 0, false
	}
	return r.Number, true
}

func cachedText(r models.FormulaResult) (string, bool) {
	if r.Kind != models.ResultText {
		return "", false
	}
	return r.Text, true
}

// parseDecimal accepts an optional sign, digits with an optional fraction and
// an optional exponent. Hex floats, digit separators, NaN and Inf are rejected.
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !isDecimalSyntax(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func isDecimalSyntax(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
