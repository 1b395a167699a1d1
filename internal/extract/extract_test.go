package extract

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"resume-parser/internal/extract/pdftest"
	"resume-parser/internal/shared/util"
)

func TestValidateFileName(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{name: "plain pdf", file: "resume.pdf"},
		{name: "multiple dots", file: "jane.doe.cv.pdf"},
		{name: "only extension", file: ".pdf"},
		{name: "no extension", file: "resume", wantErr: true},
		{name: "other extension", file: "resume.txt", wantErr: true},
		{name: "pdf not last", file: "resume.pdf.exe", wantErr: true},
		{name: "uppercase", file: "RESUME.PDF", wantErr: true},
		{name: "trailing dot", file: "resume.", wantErr: true},
		{name: "empty", file: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileName(tt.file)
			if tt.wantErr && !errors.Is(err, ErrInvalidFileType) {
				t.Fatalf("expected ErrInvalidFileType, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	for _, strategy := range []string{StrategyPlain, StrategyMarkdown} {
		x, err := New(strategy, "")
		if err != nil {
			t.Fatalf("New(%q): %v", strategy, err)
		}
		if x.Strategy() != strategy {
			t.Fatalf("expected strategy %q, got %q", strategy, x.Strategy())
		}
	}

	if _, err := New("ocr", ""); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestPlainExtractsPagesInOrder(t *testing.T) {
	dir := t.TempDir()
	data := pdftest.Build(
		pdftest.Text("Jane Doe", "Senior Go Engineer"),
		pdftest.Text("Experience at Acme (2020)"),
	)

	res, err := NewPlain(dir).Extract(context.Background(), Document{FileName: "resume.pdf", Body: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", res.Pages)
	}
	if res.Strategy != StrategyPlain {
		t.Fatalf("expected plain strategy, got %q", res.Strategy)
	}
	if res.Elapsed <= 0 {
		t.Fatalf("expected positive elapsed time, got %s", res.Elapsed)
	}
	if res.SHA256 != util.SHA256Hex(data) {
		t.Fatalf("expected digest of the upload, got %q", res.SHA256)
	}

	first := strings.Index(res.Text, "Jane Doe")
	second := strings.Index(res.Text, "Experience at Acme (2020)")
	if first < 0 || second < 0 {
		t.Fatalf("missing text in %q", res.Text)
	}
	if first > second {
		t.Fatalf("expected page 1 text before page 2 text, got %q", res.Text)
	}
	assertNoScratchFiles(t, dir)
}

func TestMarkdownMarksHeadings(t *testing.T) {
	dir := t.TempDir()
	data := pdftest.Build(pdftest.Page{
		{Text: "Jane Doe", Size: 24},
		{Text: "Experience", Size: 16},
		{Text: "Built ingestion services at Acme.", Size: 11},
		{Text: "Led the platform team.", Size: 11},
	})

	res, err := NewMarkdown(dir).Extract(context.Background(), Document{FileName: "resume.pdf", Body: bytes.NewReader(data)})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(res.Text), "\n")
	want := []string{
		"# Jane Doe",
		"## Experience",
		"Built ingestion services at Acme.",
		"Led the platform team.",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), res.Text)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
	assertNoScratchFiles(t, dir)
}

func TestExtractRejectsInvalidFileName(t *testing.T) {
	dir := t.TempDir()
	data := pdftest.Build(pdftest.Text("Jane Doe"))

	_, err := NewPlain(dir).Extract(context.Background(), Document{FileName: "resume.docx", Body: bytes.NewReader(data)})
	if !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
	if errors.Is(err, ErrExtraction) {
		t.Fatalf("file name errors must not be extraction errors: %v", err)
	}
	assertNoScratchFiles(t, dir)
}

func TestExtractCorruptPDF(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not a pdf", body: []byte("hello, this is plain text")},
		{name: "truncated", body: pdftest.Build(pdftest.Text("Jane Doe"))[:40]},
		{name: "empty body", body: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, err := NewPlain(dir).Extract(context.Background(), Document{FileName: "resume.pdf", Body: bytes.NewReader(tt.body)})
			if !errors.Is(err, ErrExtraction) {
				t.Fatalf("expected ErrExtraction, got %v", err)
			}
			var xerr *Error
			if !errors.As(err, &xerr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if xerr.Strategy != StrategyPlain {
				t.Fatalf("expected plain strategy on error, got %q", xerr.Strategy)
			}
			assertNoScratchFiles(t, dir)
		})
	}
}

func TestExtractBlankPDF(t *testing.T) {
	dir := t.TempDir()
	data := pdftest.Build(pdftest.Page{}, pdftest.Text("   "))

	_, err := NewPlain(dir).Extract(context.Background(), Document{FileName: "blank.pdf", Body: bytes.NewReader(data)})
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected blank documents to be extraction errors, got %v", err)
	}
	assertNoScratchFiles(t, dir)
}

func TestExtractCanceledContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	data := pdftest.Build(pdftest.Text("Jane Doe"))
	_, err := NewPlain(dir).Extract(ctx, Document{FileName: "resume.pdf", Body: bytes.NewReader(data)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	assertNoScratchFiles(t, dir)
}

func assertNoScratchFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read scratch dir: %v", err)
	}
	if len(entries) != 0 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected no scratch files, found %v", names)
	}
}
