// Package models defines data structures for roster validation.
package models

// CellKind identifies where a raw cell value came from.
type CellKind int

const (
	// CellAbsent is a cell that does not exist in the row.
	CellAbsent CellKind = iota
	// CellBlank is a cell that exists but holds no value.
	CellBlank
	// CellNumber is a cell holding a numeric constant.
	CellNumber
	// CellText is a cell holding a string constant.
	CellText
	// CellBool is a cell holding a boolean constant.
	CellBool
	// CellError is a cell holding an error value such as #N/A.
	CellError
	// CellFormula is a formula cell; its cached result is in RawCell.Result.
	CellFormula
)

var cellKindNames = [...]string{
	CellAbsent:  "absent",
	CellBlank:   "blank",
	CellNumber:  "number",
	CellText:    "text",
	CellBool:    "bool",
	CellError:   "error",
	CellFormula: "formula",
}

func (k CellKind) String() string {
	if k < 0 || int(k) >= len(cellKindNames) {
		return "unknown"
	}
	return cellKindNames[k]
}

// ResultKind identifies the cached result stored with a formula cell.
type ResultKind int

const (
	// ResultNone means the workbook carries no cached result.
	ResultNone ResultKind = iota
	// ResultNumber is a cached numeric result.
	ResultNumber
	// ResultText is a cached string result.
	ResultText
	// ResultError is a cached error (or boolean) result with no numeric reading.
	ResultError
)

// FormulaResult is the last computed value saved alongside a formula.
type FormulaResult struct {
	Kind   ResultKind
	Number float64
	Text   string
}

// RawCell is one spreadsheet cell as stored in the workbook, before any
// interpretation. Only the fields matching Kind are meaningful.
type RawCell struct {
	Kind CellKind
	// Number is set for CellNumber.
	Number float64
	// Text is set for CellText and CellError, and holds the formula for CellFormula.
	Text string
	// Bool is set for CellBool.
	Bool bool
	// Result is set for CellFormula.
	Result FormulaResult
}

// Absent returns a cell that is missing from its row.
func Absent() RawCell { return RawCell{Kind: CellAbsent} }

// Blank returns an empty cell.
func Blank() RawCell { return RawCell{Kind: CellBlank} }

// Number returns a numeric cell.
func Number(v float64) RawCell { return RawCell{Kind: CellNumber, Number: v} }

// Text returns a string cell.
func Text(s string) RawCell { return RawCell{Kind: CellText, Text: s} }

// Bool returns a boolean cell.
func Bool(b bool) RawCell { return RawCell{Kind: CellBool, Bool: b} }

// ErrorValue returns a cell holding an error literal like "#DIV/0!".
func ErrorValue(code string) RawCell { return RawCell{Kind: CellError, Text: code} }

// Formula returns a formula cell with the given cached result.
func Formula(expr string, result FormulaResult) RawCell {
	return RawCell{Kind: CellFormula, Text: expr, Result: result}
}

// NumberResult is a cached numeric formula result.
func NumberResult(v float64) FormulaResult {
	return FormulaResult{Kind: ResultNumber, Number: v}
}

// TextResult is a cached string formula result.
func TextResult(s string) FormulaResult {
	return FormulaResult{Kind: ResultText, Text: s}
}

// ErrorResult is a cached formula result that has neither a number nor a string reading.
func ErrorResult(code string) FormulaResult {
	return FormulaResult{Kind: ResultError, Text: code}
}
