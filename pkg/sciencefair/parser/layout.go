// Package parser reads roster rows from Excel workbooks.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/ukaji3/sciencefair-go/pkg/sciencefair/models"
	"github.com/xuri/excelize/v2"
)

// Layout records which rows and roster cells a worksheet stores, whatever
// their values. A styled cell without a value is stored; a row or cell the
// workbook never wrote is not.
type Layout struct {
	// rows maps a 1-based row number to the stored roster columns (1-based).
	rows    map[int]map[int]bool
	lastRow int
}

// RowCount returns the number of the last stored row, or 0 for an empty sheet.
func (l *Layout) RowCount() int {
	return l.lastRow
}

// HasRow reports whether the 1-based row is stored.
func (l *Layout) HasRow(row int) bool {
	_, ok := l.rows[row]
	return ok
}

// HasCell reports whether the cell at 1-based col and row is stored.
func (l *Layout) HasCell(col, row int) bool {
	return l.rows[row][col]
}

// ReadLayout reads the row and cell structure of a sheet from the xlsx file at xlsxPath.
func ReadLayout(xlsxPath, sheetName string) (*Layout, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetPath, err := findSheetPath(&r.Reader, sheetName)
	if err != nil {
		return nil, err
	}

	rc, err := openZipFile(&r.Reader, sheetPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	layout, err := parseSheetLayout(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", sheetPath, err)
	}
	return layout, nil
}

// findSheetPath resolves a sheet name to its worksheet part through
// workbook.xml and its relationships.
func findSheetPath(r *zip.Reader, sheetName string) (string, error) {
	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil {
		return "", err
	}
	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return "", err
	}

	sheetFiles := parseWorkbookRels(wbRelsXML, parseWorkbookSheets(workbookXML))
	sheetPath, ok := sheetFiles[sheetName]
	if !ok {
		return "", fmt.Errorf("worksheet part for sheet %q not found", sheetName)
	}
	return sheetPath, nil
}

// parseSheetLayout streams sheetData, noting each <row> and each <c> within
// the roster columns. Row and cell references are optional in the format;
// when missing they follow the previous element.
func parseSheetLayout(rd io.Reader) (*Layout, error) {
	layout := &Layout{rows: make(map[int]map[int]bool)}
	decoder := xml.NewDecoder(rd)

	inSheetData := false
	var cols map[int]bool
	rowNum, colNum := 0, 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "sheetData":
				inSheetData = true
			case inSheetData && t.Name.Local == "row":
				rowNum++
				if ref := attrValue(t, "r"); ref != "" {
					n, err := strconv.Atoi(ref)
					if err != nil {
						return nil, fmt.Errorf("invalid row reference %q", ref)
					}
					rowNum = n
				}
				colNum = 0
				cols = make(map[int]bool)
				layout.rows[rowNum] = cols
				if rowNum > layout.lastRow {
					layout.lastRow = rowNum
				}
			case inSheetData && t.Name.Local == "c" && cols != nil:
				colNum++
				if ref := attrValue(t, "r"); ref != "" {
					col, _, err := excelize.CellNameToCoordinates(ref)
					if err != nil {
						return nil, err
					}
					colNum = col
				}
				if colNum <= models.ColumnCount {
					cols[colNum] = true
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "sheetData":
				inSheetData = false
			case "row":
				cols = nil
			}
		}
	}

	return layout, nil
}

func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// Helper functions

func openZipFile(r *zip.Reader, name string) (io.ReadCloser, error) {
	for _, f := range r.File {
		if f.Name == name {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	rc, err := openZipFile(r, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rID, target := attrValue(se, "Id"), attrValue(se, "Target")
			relType := attrValue(se, "Type")
			if sheetName, ok := sheetsInfo[rID]; ok && strings.HasSuffix(relType, "/worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}
