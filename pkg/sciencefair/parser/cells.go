package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/models"
	"github.com/xuri/excelize/v2"
)

// Sheet gives index-addressable, read-only access to the roster rows of one worksheet.
type Sheet struct {
	f      *excelize.File
	name   string
	layout *Layout
}

// OpenSheet returns the named sheet of f. layout must describe the same sheet
// and the file must stay open while the Sheet is used.
func OpenSheet(f *excelize.File, sheetName string, layout *Layout) (*Sheet, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %s does not exist", sheetName)
	}
	return &Sheet{
		f:      f,
		name:   sheetName,
		layout: layout,
	}, nil
}

// Name returns the worksheet name.
func (s *Sheet) Name() string {
	return s.name
}

// RowCount returns the number of rows up to and including the last stored row.
func (s *Sheet) RowCount() int {
	return s.layout.RowCount()
}

// Row reads the roster columns of the 0-based row i.
// It returns nil when the workbook does not store the row.
func (s *Sheet) Row(i int) (*models.Row, error) {
	rowNum := i + 1 // 1-based row index
	if !s.layout.HasRow(rowNum) {
		return nil, nil
	}

	cells := make([]models.RawCell, models.ColumnCount)
	for colIdx := range cells {
		cell, err := s.readCell(colIdx, rowNum, s.layout.HasCell(colIdx+1, rowNum))
		if err != nil {
			return nil, err
		}
		cells[colIdx] = cell
	}
	return models.NewRow(rowNum, cells...), nil
}

func (s *Sheet) readCell(colIdx, rowNum int, present bool) (models.RawCell, error) {
	cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
	if err != nil {
		return models.RawCell{}, err
	}
	formula, err := s.f.GetCellFormula(s.name, cellName)
	if err != nil {
		return models.RawCell{}, fmt.Errorf("cell %s formula: %w", cellName, err)
	}
	cellType, err := s.f.GetCellType(s.name, cellName)
	if err != nil {
		return models.RawCell{}, fmt.Errorf("cell %s type: %w", cellName, err)
	}
	raw, err := s.f.GetCellValue(s.name, cellName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.RawCell{}, fmt.Errorf("cell %s value: %w", cellName, err)
	}
	return Classify(formula, cellType, raw, present), nil
}

// Classify maps what the workbook stores for a cell to a RawCell.
// present is false when the workbook does not store the cell.
// For formula cells raw is the cached result.
func Classify(formula string, cellType excelize.CellType, raw string, present bool) models.RawCell {
	if formula != "" {
		return models.Formula(formula, classifyResult(cellType, raw))
	}
	if !present {
		return models.Absent()
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeDate:
		return models.Text(raw)
	case excelize.CellTypeBool:
		return models.Bool(parseBool(raw))
	case excelize.CellTypeError:
		return models.ErrorValue(raw)
	}

	// Numeric cells are usually stored without an explicit type.
	if raw == "" {
		return models.Blank()
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.Number(v)
	}
	return models.Text(raw)
}

func classifyResult(cellType excelize.CellType, raw string) models.FormulaResult {
	switch cellType {
	case excelize.CellTypeError, excelize.CellTypeBool:
		return models.ErrorResult(raw)
	case excelize.CellTypeFormula, excelize.CellTypeSharedString,
		excelize.CellTypeInlineString, excelize.CellTypeDate:
		return models.TextResult(raw)
	}

	if raw == "" {
		return models.FormulaResult{}
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return models.NumberResult(v)
	}
	return models.TextResult(raw)
}

func parseBool(s string) bool {
	return s == "1" || strings.EqualFold(s, "TRUE")
}
