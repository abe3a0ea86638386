package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/models"
)

// Score bounds, inclusive.
const (
	MinScore = 0
	MaxScore = 10
)

// Row applies every rule to a row and returns the failures in rule order:
// identity, judge 1, judge 2, average. All rules run even when earlier ones fail.
func Row(row *models.Row) []models.Violation {
	var out []models.Violation
	add := func(rule models.RuleID, format string, args ...any) {
		out = append(out, models.Violation{
			Row:     row.Index,
			Rule:    rule,
			Message: fmt.Sprintf("Row %d: "+format, append([]any{row.Index}, args...)...),
		})
	}

	if IsEmptyText(row.Name) || IsEmptyText(row.Project) {
		add(models.RuleIdentity, "Missing name or project")
	}

	s1, ok1 := AsNumber(row.Judge1)
	if !ok1 || !inRange(s1) {
		add(models.RuleJudge1, "Judge 1 score invalid (%d..%d)", MinScore, MaxScore)
	}
	s2, ok2 := AsNumber(row.Judge2)
	if !ok2 || !inRange(s2) {
		add(models.RuleJudge2, "Judge 2 score invalid (%d..%d)", MinScore, MaxScore)
	}

	// Out-of-range scores still take part in the average check.
	if !IsEmptyText(row.Average) && ok1 && ok2 {
		expected := Round1((s1 + s2) / 2)
		actual, ok := AsNumber(row.Average)
		switch {
		case !ok:
			add(models.RuleAverageNotNumeric, "Average is not numeric")
		case Round1(actual) != expected:
			add(models.RuleAverageMismatch, "Wrong average. Expected %s but found %s",
				FormatDecimal(expected), FormatDecimal(actual))
		}
	}

	return out
}

func inRange(v float64) bool {
	return v >= MinScore && v <= MaxScore
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatDecimal renders v in the shortest form that reads back to the same
// value, always with a fractional part: 7 -> "7.0", 7.45 -> "7.45".
// Magnitudes from 1e7 up and below 1e-3 use scientific notation with a bare
// exponent: 12345678 -> "1.2345678E7", 0.0001 -> "1.0E-4".
func FormatDecimal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	if abs := math.Abs(v); abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		s := strconv.FormatFloat(v, 'E', -1, 64)
		mant, exp, _ := strings.Cut(s, "E")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		n, _ := strconv.Atoi(exp)
		return mant + "E" + strconv.Itoa(n)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
