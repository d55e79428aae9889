package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mattn/go-isatty"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/excel"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/ooxml"
)

const budgetYAML = `title: Q1 Budget
headers: [Item, Cost]
rows:
  - [Pens, 10]
  - [Paper, 20]
formulas:
  B4: "=SUM(B2:B3)"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// execute runs the root command and returns what it wrote to stdout.
// Usage and error text go to stderr and are kept out of the result.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	if err != nil && !strings.Contains(errOut.String(), err.Error()) {
		t.Errorf("stderr %q does not report %v", errOut.String(), err)
	}
	return out.String(), err
}

func TestReadIRYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "budget.yml", budgetYAML)
	data, err := readIR(path, nil)
	if err != nil {
		t.Fatalf("readIR failed: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("converted YAML is not JSON: %v\n%s", err, data)
	}
	if v["title"] != "Q1 Budget" {
		t.Errorf("title = %v", v["title"])
	}
}

func TestReadIRStdin(t *testing.T) {
	data, err := readIR("-", strings.NewReader(`{"sections": []}`))
	if err != nil {
		t.Fatalf("readIR failed: %v", err)
	}
	if string(data) != `{"sections": []}` {
		t.Errorf("data = %s", data)
	}
}

func TestResolveType(t *testing.T) {
	tests := []struct {
		flag, out string
		expected  string
		wantErr   bool
	}{
		{"word", "", "word", false},
		{"", "report.xlsx", ".xlsx", false},
		{"ppt", "deck.docx", "ppt", false},
		{"", "notes.txt", "", true},
		{"", "", "", true},
	}
	for _, tt := range tests {
		got, err := resolveType(tt.flag, tt.out)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("resolveType(%q, %q) = %q, %v", tt.flag, tt.out, got, err)
		}
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "budget.yaml", budgetYAML)
	out := filepath.Join(dir, "budget.xlsx")

	if _, err := execute(t, "generate", in, "-o", out); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	sheets, err := excel.Inspect(data)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if sheets[0].Name != "Q1 Budget" || sheets[0].Formulas["B4"] != "SUM(B2:B3)" {
		t.Errorf("sheet = %+v", sheets[0])
	}
}

func TestGenerateCommandJSON(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "memo.json", `{"title": "Memo", "sections": [{"content": "Hi"}]}`)

	stdout, err := execute(t, "generate", in, "--type", "word", "--output-dir", dir, "--json")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	var res struct {
		Success  bool   `json:"success"`
		FilePath string `json:"file_path"`
		FileName string `json:"file_name"`
		Title    string `json:"title"`
	}
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("output is not a JSON envelope: %v\n%s", err, stdout)
	}
	if !res.Success || res.Title != "Memo" || filepath.Dir(res.FilePath) != dir {
		t.Errorf("result = %+v", res)
	}
	data, err := os.ReadFile(res.FilePath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if _, err := ooxml.ReadPart(data, "word/document.xml"); err != nil {
		t.Errorf("output is not a word container: %v", err)
	}
}

func TestGenerateCommandStdout(t *testing.T) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		t.Skip("stdout is a terminal")
	}
	in := writeFile(t, t.TempDir(), "deck.json", `{"title": "Deck", "slides": []}`)
	stdout, err := execute(t, "generate", in, "-t", "pptx", "--stdout")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ooxml.ReadPart([]byte(stdout), "ppt/presentation.xml"); err != nil {
		t.Errorf("stdout is not a presentation container: %v", err)
	}
}

func TestGenerateCommandErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "bad.json", `{"title": "x"}`)
	tests := []struct {
		name string
		args []string
	}{
		{"missing input", []string{"generate", filepath.Join(dir, "missing.json"), "-t", "word"}},
		{"no type", []string{"generate", in}},
		{"unknown type", []string{"generate", in, "-t", "pdf"}},
		{"invalid structure", []string{"generate", in, "-t", "word", "-d", dir}},
		{"conflicting outputs", []string{"generate", in, "-t", "word", "--stdout", "-o", filepath.Join(dir, "x.docx")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	inputs := []string{
		writeFile(t, dir, "a.json", `{"title": "A", "slides": [{"title": "one"}]}`),
		filepath.Join(dir, "missing.json"),
		writeFile(t, dir, "c.yaml", "title: C\nslides:\n  - title: two\n    content: [x, y]\n"),
	}
	args := append([]string{"batch", "--type", "ppt", "--jobs", "2", "-d", out, "--json"}, inputs...)

	stdout, err := execute(t, args...)
	if err == nil || !strings.Contains(err.Error(), "1 of 3 inputs failed") {
		t.Fatalf("expected one failure, got %v", err)
	}

	var entries []struct {
		Input  string `json:"input"`
		Result struct {
			Success  bool   `json:"success"`
			FilePath string `json:"file_path"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	var got []bool
	for i, e := range entries {
		if e.Input != inputs[i] {
			t.Errorf("entry %d input = %q, expected %q", i, e.Input, inputs[i])
		}
		got = append(got, e.Result.Success)
		if e.Result.Success {
			if _, err := os.Stat(e.Result.FilePath); err != nil {
				t.Errorf("missing output for %s: %v", e.Input, err)
			}
		}
	}
	if diff := cmp.Diff([]bool{true, false, true}, got); diff != "" {
		t.Errorf("success mismatch (-want +got):\n%s", diff)
	}
}
