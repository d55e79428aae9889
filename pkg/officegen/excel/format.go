package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/cellref"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
)

// borderStyles maps border style names to excelize border style indexes.
var borderStyles = map[string]int{
	"thin":   1,
	"medium": 2,
	"dashed": 3,
	"dotted": 4,
	"thick":  5,
	"double": 6,
	"hair":   7,
}

// DefaultBorderStyle is used when no border style is named.
const DefaultBorderStyle = "thin"

// AddBorders draws a border on all four edges of every cell in the rectangle.
// Existing cell formatting is kept. Unknown style names fall back to thin.
func (e *Engine) AddBorders(startRow, startCol, endRow, endCol int, borderStyle string) error {
	if e.done {
		return ErrFinalized
	}
	name := strings.ToLower(strings.TrimSpace(borderStyle))
	if name == "" {
		name = DefaultBorderStyle
	}
	idx, ok := borderStyles[name]
	if !ok {
		e.log.Warn("unknown border style, using thin", "style", borderStyle)
		idx = borderStyles[DefaultBorderStyle]
	}

	topLeft, err := excelize.CoordinatesToCellName(min(startCol, endCol), min(startRow, endRow))
	if err != nil {
		return err
	}
	bottomRight, err := excelize.CoordinatesToCellName(max(startCol, endCol), max(startRow, endRow))
	if err != nil {
		return err
	}

	borders := make([]excelize.Border, 0, 4)
	for _, side := range []string{"left", "top", "right", "bottom"} {
		borders = append(borders, excelize.Border{Type: side, Color: "000000", Style: idx})
	}
	return e.applyStyle(topLeft, bottomRight, func(st *excelize.Style) {
		st.Border = borders
	})
}

// Chart frame size in inches.
const (
	chartWidth  = 6.0
	chartHeight = 3.5
)

// AddBarChart anchors a clustered column chart at anchor. The first row of dataRange holds
// series names, the first column holds categories, and each further column is one series.
func (e *Engine) AddBarChart(dataRange, anchor, title string) error {
	if e.done {
		return ErrFinalized
	}
	rng, err := cellref.ParseRange(dataRange)
	if err != nil {
		return err
	}
	if rng.MaxRow-rng.MinRow < 1 || rng.MaxCol-rng.MinCol < 1 {
		return fmt.Errorf("chart range %s needs a header row and a category column", dataRange)
	}
	if _, _, err := cellref.Parse(anchor); err != nil {
		return err
	}

	sheet := quoteSheet(e.sheet)
	catCol := cellref.ColumnName(rng.MinCol)
	chart := &excelize.Chart{
		Type:   excelize.Col,
		Legend: excelize.ChartLegend{Position: "bottom"},
		Dimension: excelize.ChartDimension{
			Width:  uint(style.EMUToPixels(style.ToEMU(chartWidth, style.Inches))),
			Height: uint(style.EMUToPixels(style.ToEMU(chartHeight, style.Inches))),
		},
	}
	if title != "" {
		chart.Title = []excelize.RichTextRun{{Text: title}}
	}
	for col := rng.MinCol + 1; col <= rng.MaxCol; col++ {
		name := cellref.ColumnName(col)
		chart.Series = append(chart.Series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$%d", sheet, name, rng.MinRow),
			Categories: fmt.Sprintf("%s!$%s$%d:$%s$%d", sheet, catCol, rng.MinRow+1, catCol, rng.MaxRow),
			Values:     fmt.Sprintf("%s!$%s$%d:$%s$%d", sheet, name, rng.MinRow+1, name, rng.MaxRow),
		})
	}
	if err := e.f.AddChart(e.sheet, strings.ToUpper(anchor), chart); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}
	return nil
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
