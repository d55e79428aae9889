package officegen

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
	"github.com/zeebo/blake3"

	"github.com/nowaywastaken/AI-Office/pkg/officegen/models"
	"github.com/nowaywastaken/AI-Office/pkg/officegen/output"
)

// Result is the uniform envelope returned for every generation, successful or not.
type Result struct {
	// Success reports whether a container was produced.
	Success bool `json:"success"`
	// DocType is the resolved document type. Empty when the type was not recognized.
	DocType DocType `json:"doc_type,omitempty"`
	// ID is the generated document identifier.
	ID string `json:"id,omitempty"`
	// FileName is ID plus the container extension.
	FileName string `json:"file_name,omitempty"`
	// FilePath is where the sink stored the container. Empty for in-memory results.
	FilePath string `json:"file_path,omitempty"`
	// Title is the title the document was rendered with.
	Title string `json:"title,omitempty"`
	// Size is the container size in bytes.
	Size int `json:"size,omitempty"`
	// Digest is the hex BLAKE3-256 of the container.
	Digest string `json:"digest,omitempty"`
	// Structure echoes a copy of the decoded IR.
	Structure any `json:"structure,omitempty"`
	// Message is a human-readable summary.
	Message string `json:"message,omitempty"`
	// Error describes the failure.
	Error string `json:"error,omitempty"`
	// ErrorKind is one of the Kind constants.
	ErrorKind string `json:"error_kind,omitempty"`

	// Content holds the container bytes. It matches the stored file byte for byte.
	Content []byte `json:"-"`
	// Err is the underlying error of a failed generation.
	Err error `json:"-"`
}

// Generator dispatches IR to the rendering engines. It holds no per-document state and is
// safe for concurrent use; every call renders with fresh engine instances.
type Generator struct {
	cfg  Config
	log  *slog.Logger
	sink output.Sink
}

// New returns a Generator.
func New(opts Options) *Generator {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	log := opts.Logger
	if log == nil {
		log = NopLogger()
	}
	sink := opts.Sink
	if sink == nil && cfg.OutputDir != "" {
		sink = output.DirSink{Dir: cfg.OutputDir}
	}
	return &Generator{cfg: cfg, log: log, sink: sink}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate validates the JSON-encoded IR for docType, renders exactly one container and
// stores it through the sink. Errors never escape: they are reported in the Result.
// An unrecognized docType fails before any decoding or I/O.
func (g *Generator) Generate(ctx context.Context, docType string, ir []byte, fallbackTitle string) *Result {
	dt, err := ParseDocType(docType)
	if err != nil {
		return g.fail("", err)
	}
	if err := ctx.Err(); err != nil {
		return g.fail(dt, err)
	}
	doc, err := Decode(dt, ir)
	if err != nil {
		return g.fail(dt, err)
	}
	return g.generate(dt, doc, fallbackTitle)
}

// Decode validates and decodes JSON-encoded IR for dt.
func Decode(dt DocType, ir []byte) (any, error) {
	switch dt {
	case Word:
		return models.DecodeTextDocument(ir)
	case Excel:
		return models.DecodeSpreadsheet(ir)
	case PPT:
		return models.DecodeSlideDeck(ir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, dt)
	}
}

func (g *Generator) generate(dt DocType, doc any, fallbackTitle string) *Result {
	start := time.Now()

	echo, err := echoIR(doc)
	if err != nil {
		return g.fail(dt, NewRenderError(dt, "structure", err))
	}
	data, title, err := g.render(dt, doc, fallbackTitle)
	if err != nil {
		return g.fail(dt, err)
	}

	id := uuid.NewString()
	sum := blake3.Sum256(data)
	res := &Result{
		Success:   true,
		DocType:   dt,
		ID:        id,
		FileName:  id + dt.Extension(),
		Title:     title,
		Size:      len(data),
		Digest:    hex.EncodeToString(sum[:]),
		Structure: echo,
		Message:   fmt.Sprintf("Successfully generated %s: %s", dt.Label(), title),
		Content:   data,
	}
	if g.sink != nil {
		path, err := g.sink.Put(res.FileName, data)
		if err != nil {
			return g.fail(dt, NewRenderError(dt, "output", err))
		}
		res.FilePath = path
	}

	g.log.Info("document generated",
		"doc_type", dt,
		"id", id,
		"bytes", res.Size,
		"digest", res.Digest,
		"path", res.FilePath,
		"elapsed", time.Since(start))
	return res
}

// render runs the engine for dt. Engine panics are reported as render failures.
func (g *Generator) render(dt DocType, doc any, fallbackTitle string) (data []byte, title string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewRenderError(dt, "engine", fmt.Errorf("panic: %v", r))
		}
	}()
	switch d := doc.(type) {
	case *models.TextDocument:
		return g.RenderWord(d, fallbackTitle)
	case *models.Spreadsheet:
		return g.RenderExcel(d, fallbackTitle)
	case *models.SlideDeck:
		return g.RenderPPT(d, fallbackTitle)
	default:
		return nil, "", fmt.Errorf("%w: no engine for %T", ErrUnknownDocumentType, doc)
	}
}

func (g *Generator) fail(dt DocType, err error) *Result {
	kind := ErrorKind(err)
	label := "document"
	if dt != "" {
		label = dt.Label()
	}
	g.log.Error("document generation failed", "doc_type", dt, "kind", kind, "error", err)
	return &Result{
		Success:   false,
		DocType:   dt,
		Message:   "Failed to generate " + label,
		Error:     err.Error(),
		ErrorKind: kind,
		Err:       err,
	}
}

// echoIR returns a deep copy of a decoded IR value.
func echoIR(doc any) (any, error) {
	switch d := doc.(type) {
	case *models.TextDocument:
		return clone(d)
	case *models.Spreadsheet:
		return clone(d)
	case *models.SlideDeck:
		return clone(d)
	default:
		return nil, fmt.Errorf("cannot copy %T", doc)
	}
}

func clone[T any](v *T) (*T, error) {
	out := new(T)
	if err := deepcopy.Copy(out, *v); err != nil {
		return nil, err
	}
	return out, nil
}
