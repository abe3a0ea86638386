package sciencefair

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/models"
)

var header = []interface{}{"Name", "Project", "Judge 1", "Judge 2", "Average"}

func writeWorkbook(t *testing.T, sheet string, rows ...[]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range append([][]interface{}{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "ScienceFair.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestValidateReportsViolations(t *testing.T) {
	path := writeWorkbook(t, "Sheet1",
		[]interface{}{"Ada", "Volcano", 7, 8, 7.5},
		[]interface{}{"Bob", nil, 6, 9, 7.5},
		[]interface{}{"Cy", "Robots", 9, 12},
	)

	report, err := Validate(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "ScienceFair.xlsx", report.Book)
	assert.Equal(t, "Sheet1", report.Sheet)
	assert.Equal(t, 3, report.RowsChecked)
	assert.False(t, report.AllValid)
	assert.Equal(t, []models.Violation{
		{Row: 3, Rule: models.RuleIdentity, Message: "Row 3: Missing name or project"},
		{Row: 4, Rule: models.RuleJudge2, Message: "Row 4: Judge 2 score invalid (0..10)"},
	}, report.Violations)
}

func TestValidateAllValid(t *testing.T) {
	path := writeWorkbook(t, "Sheet1",
		[]interface{}{"Ada", "Volcano", 7, 8, 7.5},
		[]interface{}{"Bob", "Bridges", "6", " 9 ", "7.5"},
		[]interface{}{"Cy", "Robots", 10, 0},
	)

	report, err := Validate(path, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, report.AllValid)
	assert.Empty(t, report.Violations)
	assert.NotNil(t, report.Violations)
}

func TestValidateStyledBlankRows(t *testing.T) {
	path := writeWorkbook(t, "Sheet1",
		[]interface{}{"Ada", "Volcano", 7, 8, 7.5},
	)
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	fill, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "A3", "E3", fill))
	require.NoError(t, f.SetCellFormula("Sheet1", "E4", "AVERAGE(C4:D4)"))
	require.NoError(t, f.SetSheetRow("Sheet1", "A5", &[]interface{}{"Bob", "Bridges", 6, 9, 7.5}))
	require.NoError(t, f.SetCellStyle("Sheet1", "A6", "E6", fill))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	report, err := Validate(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 5, report.RowsChecked)
	var got []string
	for _, v := range report.Violations {
		got = append(got, v.Message)
	}
	assert.Equal(t, []string{
		"Row 3: Missing name or project",
		"Row 3: Judge 1 score invalid (0..10)",
		"Row 3: Judge 2 score invalid (0..10)",
		"Row 4: Missing name or project",
		"Row 4: Judge 1 score invalid (0..10)",
		"Row 4: Judge 2 score invalid (0..10)",
		"Row 6: Missing name or project",
		"Row 6: Judge 1 score invalid (0..10)",
		"Row 6: Judge 2 score invalid (0..10)",
	}, got)
}

func TestValidateSheetSelection(t *testing.T) {
	path := writeWorkbook(t, "Roster", []interface{}{"Ada", "Volcano", 7, 8, 7.4})

	report, err := Validate(path, Options{Sheet: "Roster"})
	require.NoError(t, err)
	assert.Equal(t, "Roster", report.Sheet)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, "Row 2: Wrong average. Expected 7.5 but found 7.4", report.Violations[0].Message)

	_, err = Validate(path, Options{Sheet: "Missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSheetNotFound))
}

func TestValidateSourceErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Validate(filepath.Join(dir, "missing.xlsx"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	var srcErr *SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Equal(t, "open", srcErr.Op)

	garbage := filepath.Join(dir, "garbage.xlsx")
	require.NoError(t, os.WriteFile(garbage, []byte("name,project\n"), 0644))
	_, err = Validate(garbage, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestValidateLogsSummary(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", []interface{}{"", "Volcano", 7, 8})
	core, logs := observer.New(zap.DebugLevel)

	_, err := Validate(path, Options{Logger: zap.New(core)})
	require.NoError(t, err)

	summary := logs.FilterMessage("validated roster").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(1), summary[0].ContextMap()["violations"])
	assert.Equal(t, 1, logs.FilterMessage("row failed").Len())
}

type fakeSource []*models.Row

func (s fakeSource) RowCount() int { return len(s) }

func (s fakeSource) Row(i int) (*models.Row, error) { return s[i], nil }

type failingSource struct{}

func (failingSource) RowCount() int { return 3 }

func (failingSource) Row(i int) (*models.Row, error) { return nil, errors.New("corrupt row") }

func TestScan(t *testing.T) {
	src := fakeSource{
		models.NewRow(1, models.Text("Name")),
		models.NewRow(2, models.Text("Ada"), models.Text("Volcano"), models.Number(7), models.Number(8)),
		nil,
		models.NewRow(4, models.Text("Bob"), models.Text("Bridges"), models.Text("x"), models.Number(8), models.Number(3)),
		models.NewRow(5, models.Text("Cy"), models.Absent(), models.Number(1), models.Number(2), models.Number(1.5)),
	}

	report, err := Scan(src, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, report.RowsChecked)
	assert.False(t, report.AllValid)
	assert.Equal(t, []models.Violation{
		{Row: 4, Rule: models.RuleJudge1, Message: "Row 4: Judge 1 score invalid (0..10)"},
		{Row: 5, Rule: models.RuleIdentity, Message: "Row 5: Missing name or project"},
	}, report.Violations)
}

func TestScanHeaderOnly(t *testing.T) {
	report, err := Scan(fakeSource{models.NewRow(1, models.Text("Name"))}, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, report.AllValid)
	assert.Zero(t, report.RowsChecked)
}

func TestScanAbortsOnSourceError(t *testing.T) {
	report, err := Scan(failingSource{}, DefaultOptions())
	assert.Nil(t, report)
	assert.EqualError(t, err, "row 2: corrupt row")
}
