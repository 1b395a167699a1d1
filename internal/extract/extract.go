package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"resume-parser/internal/shared/util"
)

const (
	StrategyPlain    = "plain"
	StrategyMarkdown = "markdown"

	scratchPattern = "resume-*.pdf"
)

var (
	// ErrInvalidFileType is returned when the declared file name does not end in .pdf.
	ErrInvalidFileType = errors.New("invalid file type: expected a .pdf file")
	// ErrExtraction marks every failure raised while turning a PDF into text.
	ErrExtraction = errors.New("pdf processing error")
	// ErrEmptyText is returned when a PDF parses but yields no text.
	ErrEmptyText = errors.New("no extractable text in document")
	// ErrUnknownStrategy is returned by New for an unsupported strategy name.
	ErrUnknownStrategy = errors.New("unknown extraction strategy")
)

// Document is an uploaded file as declared by the client.
type Document struct {
	FileName string
	Body     io.Reader
}

// Result holds the extracted text and the wall-clock time spent producing it.
type Result struct {
	Text     string
	Pages    int
	Strategy string
	SHA256   string
	Elapsed  time.Duration
}

// Extractor turns a PDF document into text.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (Result, error)
}

// Error wraps a failure from the extraction stage. It matches ErrExtraction and
// the underlying cause with errors.Is.
type Error struct {
	Strategy string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract pdf (%s): %v", e.Strategy, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrExtraction, e.Err}
}

// PDFExtractor writes each upload to a private scratch file and reads it page by
// page with github.com/ledongthuc/pdf. It holds no per-request state.
type PDFExtractor struct {
	strategy   string
	scratchDir string
	renderPage func(pdf.Page) (string, error)
}

// New returns the extractor for the given strategy. An empty scratchDir means
// the OS temp directory.
func New(strategy, scratchDir string) (*PDFExtractor, error) {
	switch strategy {
	case StrategyPlain:
		return NewPlain(scratchDir), nil
	case StrategyMarkdown:
		return NewMarkdown(scratchDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// NewPlain returns an extractor that concatenates each page's plain text.
func NewPlain(scratchDir string) *PDFExtractor {
	return &PDFExtractor{strategy: StrategyPlain, scratchDir: scratchDir, renderPage: plainPage}
}

// NewMarkdown returns an extractor that renders each page as light markdown.
func NewMarkdown(scratchDir string) *PDFExtractor {
	return &PDFExtractor{strategy: StrategyMarkdown, scratchDir: scratchDir, renderPage: markdownPage}
}

// Strategy reports the configured strategy name.
func (x *PDFExtractor) Strategy() string {
	return x.strategy
}

// ValidateFileName accepts names whose last extension is exactly "pdf".
func ValidateFileName(name string) error {
	i := strings.LastIndex(name, ".")
	if i < 0 || name[i+1:] != "pdf" {
		return ErrInvalidFileType
	}
	return nil
}

// Extract validates the file name, then extracts the text of every page in order
// with no separators added between pages. The scratch file is removed before
// Extract returns, whatever the outcome.
func (x *PDFExtractor) Extract(ctx context.Context, doc Document) (Result, error) {
	if err := ValidateFileName(doc.FileName); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, &Error{Strategy: x.strategy, Err: err}
	}
	if doc.Body == nil {
		return Result{}, &Error{Strategy: x.strategy, Err: errors.New("empty upload")}
	}

	start := time.Now()
	res, err := x.extract(ctx, doc.Body)
	if err != nil {
		return Result{}, &Error{Strategy: x.strategy, Err: err}
	}
	res.Strategy = x.strategy
	res.Elapsed = time.Since(start)
	return res, nil
}

func (x *PDFExtractor) extract(ctx context.Context, body io.Reader) (Result, error) {
	digest := util.NewDigest()
	path, err := writeScratch(x.scratchDir, io.TeeReader(body, digest))
	if err != nil {
		return Result{}, err
	}
	defer os.Remove(path)

	text, pages, err := x.readFile(ctx, path)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Pages: pages, SHA256: digest.Hex()}, nil
}

func (x *PDFExtractor) readFile(ctx context.Context, path string) (text string, pages int, err error) {
	// ledongthuc/pdf reports many malformed-file conditions by panicking.
	defer func() {
		if rec := recover(); rec != nil {
			text, pages = "", 0
			err = fmt.Errorf("read pdf: %v", rec)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	pages = reader.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		s, err := x.renderPage(page)
		if err != nil {
			return "", 0, fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(s)
	}

	text = b.String()
	if strings.TrimSpace(text) == "" {
		return "", pages, ErrEmptyText
	}
	return text, pages, nil
}

func writeScratch(dir string, body io.Reader) (string, error) {
	f, err := os.CreateTemp(dir, scratchPattern)
	if err != nil {
		return "", fmt.Errorf("create scratch file: %w", err)
	}
	path := f.Name()

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close scratch file: %w", err)
	}
	return path, nil
}

func plainPage(p pdf.Page) (string, error) {
	return p.GetPlainText(nil)
}
