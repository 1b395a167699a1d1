// Package structured turns extracted résumé text into a schema-valid
// resume.Resume using a chat-completion model with JSON Schema output.
package structured

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-parser/internal/llm"
	"resume-parser/internal/resume"
)

// ErrGeneration marks every failure of the structured generation stage.
var ErrGeneration = errors.New("structured output generation error")

// Error wraps a generation failure. It matches ErrGeneration and the underlying
// cause with errors.Is.
type Error struct {
	Model string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generate structured output (%s): %v", e.Model, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrGeneration, e.Err}
}

// Result is the decoded résumé and the wall-clock time of the completion call
// plus validation.
type Result struct {
	Resume  resume.Resume
	Elapsed time.Duration
}

// Extractor generates résumés from text. Model is informational and used in
// errors and logs; the client decides which model is called.
type Extractor struct {
	LLM   llm.Client
	Model string
}

// Generate sends the text as the only user message and validates the model
// output against the résumé schema before decoding it.
func (x Extractor) Generate(ctx context.Context, text string) (Result, error) {
	if x.LLM == nil {
		return Result{}, x.fail(errors.New("no completion client configured"))
	}

	start := time.Now()
	resp, err := x.LLM.Complete(ctx, BuildRequest(text))
	if err != nil {
		return Result{}, x.fail(err)
	}
	if resp.Refusal != "" {
		return Result{}, x.fail(fmt.Errorf("%w: %s", llm.ErrRefusal, resp.Refusal))
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return Result{}, x.fail(llm.ErrEmptyResponse)
	}

	parsed, err := resume.Parse([]byte(content))
	if err != nil {
		return Result{}, x.fail(err)
	}
	return Result{Resume: parsed, Elapsed: time.Since(start)}, nil
}

// BuildRequest is the completion request for one document: the raw text as the
// sole user message, constrained to the strict résumé schema.
func BuildRequest(text string) llm.Request {
	return llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: text}},
		Schema: &llm.JSONSchema{
			Name:   resume.SchemaName,
			Schema: resume.Schema(),
			Strict: true,
		},
	}
}

func (x Extractor) fail(err error) error {
	return &Error{Model: x.Model, Err: err}
}
