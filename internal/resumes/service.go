package resumes

import (
	"context"
	"errors"
	"io"
	"time"

	"resume-parser/internal/extract"
	"resume-parser/internal/resume"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/telemetry"
	"resume-parser/internal/shared/util"
	"resume-parser/internal/structured"
)

// Generator turns extracted text into a structured résumé.
type Generator interface {
	Generate(ctx context.Context, text string) (structured.Result, error)
}

// Upload is one client-supplied file. The body is read once.
type Upload struct {
	FileName string
	Body     io.Reader
}

// Parsed is a structured résumé with the time spent in each stage.
type Parsed struct {
	Resume         resume.Resume
	ExtractionTime time.Duration
	GenerationTime time.Duration
}

// Total is the sum of both stage timings.
func (p Parsed) Total() time.Duration {
	return p.ExtractionTime + p.GenerationTime
}

// Service runs text extraction followed by structured generation.
type Service struct {
	Extractor extract.Extractor
	Generator Generator
}

// Parse validates the file name, then extracts and structures the document.
// Stages run strictly in order; a failing stage stops the pipeline.
func (s *Service) Parse(ctx context.Context, up Upload) (Parsed, error) {
	metrics.IncParseStarted()

	if err := extract.ValidateFileName(up.FileName); err != nil {
		metrics.IncParseFailed(metrics.StageValidation)
		return Parsed{}, err
	}
	if s.Extractor == nil || s.Generator == nil {
		metrics.IncParseFailed(metrics.StageUnexpected)
		return Parsed{}, errors.New("resume service is not configured")
	}

	text, err := s.Extractor.Extract(ctx, extract.Document{FileName: up.FileName, Body: up.Body})
	if err != nil {
		metrics.IncParseFailed(stageOf(err))
		return Parsed{}, err
	}
	metrics.ObserveExtractionMs(millis(text.Elapsed))

	gen, err := s.Generator.Generate(ctx, text.Text)
	if err != nil {
		metrics.IncParseFailed(stageOf(err))
		telemetry.Warn("resume.generation_failed", map[string]any{
			"file_name":     util.LogFileName(up.FileName),
			"sha256":        text.SHA256,
			"extraction_ms": text.Elapsed.Milliseconds(),
			"error":         err,
		})
		return Parsed{}, err
	}
	metrics.ObserveGenerationMs(millis(gen.Elapsed))
	metrics.IncParseCompleted()

	out := Parsed{
		Resume:         gen.Resume,
		ExtractionTime: text.Elapsed,
		GenerationTime: gen.Elapsed,
	}
	telemetry.Info("resume.parsed", map[string]any{
		"file_name":     util.LogFileName(up.FileName),
		"sha256":        text.SHA256,
		"strategy":      text.Strategy,
		"pages":         text.Pages,
		"text_chars":    len(text.Text),
		"extraction_ms": out.ExtractionTime.Milliseconds(),
		"generation_ms": out.GenerationTime.Milliseconds(),
		"total_ms":      out.Total().Milliseconds(),
	})
	return out, nil
}

func stageOf(err error) string {
	switch {
	case errors.Is(err, extract.ErrInvalidFileType):
		return metrics.StageValidation
	case errors.Is(err, extract.ErrExtraction):
		return metrics.StageExtraction
	case errors.Is(err, structured.ErrGeneration):
		return metrics.StageGeneration
	default:
		return metrics.StageUnexpected
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
