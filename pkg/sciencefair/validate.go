package sciencefair

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/models"
	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/parser"
	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/validate"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// HeaderRows is the number of leading rows that hold column titles.
const HeaderRows = 1

// Source is read-only, index-addressable access to roster rows.
type Source interface {
	// RowCount returns the number of rows, header included.
	RowCount() int
	// Row returns the 0-based row i, or nil if the row does not exist.
	Row(i int) (*models.Row, error)
}

// Validate checks every data row of the roster workbook at path.
// Rule failures are reported in the returned Report; an error means the
// workbook could not be read and no rows were reported.
func Validate(path string, opts Options) (*models.Report, error) {
	log := opts.logger()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewSourceError(path, "open", classifyOpenError(err))
	}
	defer f.Close()

	sheetName, err := selectSheet(f, opts.Sheet)
	if err != nil {
		return nil, NewSourceError(path, "sheet", err)
	}
	log.Debug("selected sheet", zap.String("path", path), zap.String("sheet", sheetName))

	layout, err := parser.ReadLayout(path, sheetName)
	if err != nil {
		return nil, NewSourceError(path, "sheet", err)
	}
	sheet, err := parser.OpenSheet(f, sheetName, layout)
	if err != nil {
		return nil, NewSourceError(path, "sheet", err)
	}

	report, err := Scan(sheet, opts)
	if err != nil {
		return nil, NewSourceError(path, "row", err)
	}
	report.Book = filepath.Base(path)
	report.Sheet = sheetName

	log.Info("validated roster",
		zap.String("book", report.Book),
		zap.String("sheet", report.Sheet),
		zap.Int("rows", report.RowsChecked),
		zap.Int("violations", len(report.Violations)),
	)
	return report, nil
}

// Scan validates the data rows of src in order, skipping the header and
// rows the source does not store. A stored row with only empty cells is validated.
func Scan(src Source, opts Options) (*models.Report, error) {
	log := opts.logger()
	report := &models.Report{Violations: []models.Violation{}}

	for i := HeaderRows; i < src.RowCount(); i++ {
		row, err := src.Row(i)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if row == nil {
			continue
		}

		violations := validate.Row(row)
		if len(violations) > 0 {
			log.Debug("row failed", zap.Int("row", row.Index), zap.Int("violations", len(violations)))
		}
		report.Violations = append(report.Violations, violations...)
		report.RowsChecked++
	}

	report.AllValid = len(report.Violations) == 0
	return report, nil
}

func selectSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if name == "" {
		if len(sheets) == 0 {
			return "", ErrSheetNotFound
		}
		return sheets[0], nil
	}
	if !slices.Contains(sheets, name) {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return name, nil
}

func classifyOpenError(err error) error {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrFileNotFound
	case errors.As(err, &pathErr):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
}
