package models

// RuleID names the rule that produced a violation.
type RuleID string

const (
	// RuleIdentity fires when the name or project is missing.
	RuleIdentity RuleID = "identity"
	// RuleJudge1 fires when judge 1's score is missing or outside 0..10.
	RuleJudge1 RuleID = "judge1"
	// RuleJudge2 fires when judge 2's score is missing or outside 0..10.
	RuleJudge2 RuleID = "judge2"
	// RuleAverageNotNumeric fires when the average cell cannot be read as a number.
	RuleAverageNotNumeric RuleID = "average_not_numeric"
	// RuleAverageMismatch fires when the average differs from the judges' mean.
	RuleAverageMismatch RuleID = "average_mismatch"
)

// Violation is a single rule failure on a row.
type Violation struct {
	// Row is the 1-based row number the failure refers to.
	Row int `json:"row" yaml:"row"`
	// Rule identifies the failed rule.
	Rule RuleID `json:"rule" yaml:"rule"`
	// Message is the human-readable report line.
	Message string `json:"message" yaml:"message"`
}

// Report is the result of validating one sheet.
type Report struct {
	// Book is the workbook file name (no path).
	Book string `json:"book" yaml:"book"`
	// Sheet is the validated sheet name.
	Sheet string `json:"sheet" yaml:"sheet"`
	// RowsChecked counts the data rows that were validated.
	RowsChecked int `json:"rows_checked" yaml:"rows_checked"`
	// Violations lists failures in row order, then rule order.
	Violations []Violation `json:"violations" yaml:"violations"`
	// AllValid is true when Violations is empty.
	AllValid bool `json:"all_valid" yaml:"all_valid"`
}
