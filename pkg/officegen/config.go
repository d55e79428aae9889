package officegen

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/excel"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/ppt"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/style"
)

// Config holds rendering defaults. Zero values are not meaningful; start from DefaultConfig.
type Config struct {
	// OutputDir is where containers are written. Empty keeps results in memory only.
	OutputDir string `yaml:"output_dir"`
	// FallbackTitles are used when neither the IR nor the caller provides a title.
	FallbackTitles map[DocType]string `yaml:"fallback_titles"`
	Word           WordConfig         `yaml:"word"`
	Excel          ExcelConfig        `yaml:"excel"`
	PPT            PPTConfig          `yaml:"ppt"`
}

// Margins are page margins in centimeters.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// WordConfig holds body paragraph and page defaults for word documents.
type WordConfig struct {
	FontName    string  `yaml:"font_name"`
	FontSize    float64 `yaml:"font_size"`
	LineSpacing float64 `yaml:"line_spacing"`
	// SpaceAfter is in points.
	SpaceAfter float64 `yaml:"space_after"`
	// Margins apply when the document has no style guide.
	Margins Margins `yaml:"margins"`
	// StyleMargin is the uniform margin used when a style guide omits one.
	StyleMargin float64 `yaml:"style_margin"`
}

// ExcelConfig holds spreadsheet formatting defaults.
type ExcelConfig struct {
	MinColumnWidth float64 `yaml:"min_column_width"`
	MaxColumnWidth float64 `yaml:"max_column_width"`
	BorderStyle    string  `yaml:"border_style"`
}

// PPTConfig holds slide deck defaults.
type PPTConfig struct {
	// SlideWidth and SlideHeight are in inches.
	SlideWidth      float64 `yaml:"slide_width"`
	SlideHeight     float64 `yaml:"slide_height"`
	DefaultSubtitle string  `yaml:"default_subtitle"`
}

// DefaultConfig returns the default rendering configuration.
func DefaultConfig() Config {
	return Config{
		FallbackTitles: map[DocType]string{
			Word:  "Generated Document",
			Excel: "Generated Sheet",
			PPT:   "Generated Presentation",
		},
		Word: WordConfig{
			FontName:    "Arial",
			FontSize:    12,
			LineSpacing: 1.5,
			SpaceAfter:  12,
			Margins:     Margins{Top: 2.54, Bottom: 2.54, Left: 3.18, Right: 3.18},
			StyleMargin: 2.54,
		},
		Excel: ExcelConfig{
			MinColumnWidth: excel.DefaultMinColumnWidth,
			MaxColumnWidth: excel.DefaultMaxColumnWidth,
			BorderStyle:    excel.DefaultBorderStyle,
		},
		PPT: PPTConfig{
			SlideWidth:      13.333,
			SlideHeight:     7.5,
			DefaultSubtitle: "Generated by AI Office Suite",
		},
	}
}

// LoadConfig reads a YAML config file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks numeric ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Word.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("word.font_size must be positive, got %v", c.Word.FontSize))
	}
	if c.Word.LineSpacing <= 0 {
		errs = append(errs, fmt.Errorf("word.line_spacing must be positive, got %v", c.Word.LineSpacing))
	}
	if c.Word.SpaceAfter < 0 {
		errs = append(errs, fmt.Errorf("word.space_after must not be negative, got %v", c.Word.SpaceAfter))
	}
	m := c.Word.Margins
	if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 || c.Word.StyleMargin < 0 {
		errs = append(errs, errors.New("word margins must not be negative"))
	}
	if c.Excel.MinColumnWidth <= 0 || c.Excel.MaxColumnWidth < c.Excel.MinColumnWidth {
		errs = append(errs, fmt.Errorf("excel column widths must satisfy 0 < min <= max, got %v..%v",
			c.Excel.MinColumnWidth, c.Excel.MaxColumnWidth))
	}
	for _, v := range []float64{c.PPT.SlideWidth, c.PPT.SlideHeight} {
		emu := style.ToEMU(v, style.Inches)
		if emu < ppt.MinSlideDimension || emu > ppt.MaxSlideDimension {
			errs = append(errs, fmt.Errorf("ppt slide size %vx%vin out of range", c.PPT.SlideWidth, c.PPT.SlideHeight))
			break
		}
	}
	return errors.Join(errs...)
}

// fallbackTitle returns the configured fallback title for t.
func (c Config) fallbackTitle(t DocType) string {
	if title := c.FallbackTitles[t]; title != "" {
		return title
	}
	return DefaultConfig().FallbackTitles[t]
}
