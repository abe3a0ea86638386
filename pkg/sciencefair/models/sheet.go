package models

// Column positions of the roster, 0-based.
const (
	ColName = iota
	ColProject
	ColJudge1
	ColJudge2
	ColAverage

	// ColumnCount is the number of columns a roster row is read from.
	ColumnCount
)

// Row represents one data row of the roster.
type Row struct {
	// Index is the 1-based row number as shown in the spreadsheet.
	Index int
	// Name is the participant name.
	Name RawCell
	// Project is the project title.
	Project RawCell
	// Judge1 is the first judge's score.
	Judge1 RawCell
	// Judge2 is the second judge's score.
	Judge2 RawCell
	// Average is the recorded average of both scores.
	Average RawCell
}

// NewRow builds a Row from cells in column order. Missing trailing cells are Absent.
func NewRow(index int, cells ...RawCell) *Row {
	var c [ColumnCount]RawCell
	copy(c[:], cells)
	return &Row{
		Index:   index,
		Name:    c[ColName],
		Project: c[ColProject],
		Judge1:  c[ColJudge1],
		Judge2:  c[ColJudge2],
		Average: c[ColAverage],
	}
}
