package excel

import (
	"bytes"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/xuri/excelize/v2"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/cellref"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
)

// CellRow is one non-empty row of a sheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letters to cell values.
	C map[string]any `json:"c"`
}

// SheetSummary is the content of one sheet as read back from a workbook.
type SheetSummary struct {
	Name string    `json:"name"`
	Rows []CellRow `json:"rows,omitempty"`
	// Formulas maps cell references to formula text without the leading '='.
	Formulas map[string]string `json:"formulas,omitempty"`
}

// Inspect reads a rendered workbook back into per-sheet cell values and formulas.
func Inspect(container []byte) ([]SheetSummary, error) {
	f, err := excelize.OpenReader(bytes.NewReader(container))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	formulas, err := readFormulas(container)
	if err != nil {
		return nil, err
	}

	var sheets []SheetSummary
	for _, name := range f.GetSheetList() {
		rows, err := readRows(f, name)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", name, err)
		}
		sheets = append(sheets, SheetSummary{Name: name, Rows: rows, Formulas: formulas[name]})
	}
	return sheets, nil
}

func readRows(f *excelize.File, sheet string) ([]CellRow, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var result []CellRow
	for rowIdx, row := range rows {
		cells := make(map[string]any)
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cells[cellref.ColumnName(colIdx+1)] = parseValue(value)
		}
		if len(cells) > 0 {
			result = append(result, CellRow{R: rowIdx + 1, C: cells})
		}
	}
	return result, nil
}

// parseValue returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// readFormulas collects formula text per sheet name from the raw worksheet parts,
// including formula cells that have no cached value.
func readFormulas(container []byte) (map[string]map[string]string, error) {
	wb, err := parsePart(container, "xl/workbook.xml")
	if err != nil {
		return nil, err
	}
	rels, err := parsePart(container, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}

	targets := make(map[string]string)
	for _, rel := range xmlquery.Find(rels, "//*[local-name()='Relationship']") {
		target := rel.SelectAttr("Target")
		if !strings.HasPrefix(target, "/") {
			target = path.Join("xl", target)
		}
		targets[rel.SelectAttr("Id")] = strings.TrimPrefix(target, "/")
	}

	result := make(map[string]map[string]string)
	for _, sheet := range xmlquery.Find(wb, "//*[local-name()='sheet']") {
		part, ok := targets[localAttr(sheet, "id")]
		if !ok {
			continue
		}
		doc, err := parsePart(container, part)
		if err != nil {
			return nil, err
		}
		for _, c := range xmlquery.Find(doc, "//*[local-name()='c'][*[local-name()='f']]") {
			text := xmlquery.FindOne(c, "./*[local-name()='f']").InnerText()
			if text == "" {
				continue
			}
			name := sheet.SelectAttr("name")
			if result[name] == nil {
				result[name] = make(map[string]string)
			}
			result[name][c.SelectAttr("r")] = text
		}
	}
	return result, nil
}

func parsePart(container []byte, name string) (*xmlquery.Node, error) {
	raw, err := ooxml.ReadPart(container, name)
	if err != nil {
		return nil, err
	}
	return xmlquery.Parse(bytes.NewReader(raw))
}

func localAttr(n *xmlquery.Node, local string) string {
	for _, a := range n.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
