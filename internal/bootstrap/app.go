package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/extract"
	"resume-parser/internal/health"
	"resume-parser/internal/llm"
	openai "resume-parser/internal/llm/openai"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/server"
	"resume-parser/internal/structured"
)

// App holds shared, read-only dependencies built once at startup.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	LLM           llm.Client
	Extractor     *extract.PDFExtractor
	Generator     structured.Extractor
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// Option customizes Build.
type Option func(*options)

type options struct {
	llm llm.Client
}

// WithLLM replaces the OpenAI client, typically with a fake in tests.
func WithLLM(client llm.Client) Option {
	return func(o *options) {
		o.llm = client
	}
}

// Build wires the extractor, completion client, résumé service and router.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ExtractionStrategy) == "" {
		cfg.ExtractionStrategy = extract.StrategyPlain
	}

	extractor, err := extract.New(cfg.ExtractionStrategy, cfg.ScratchDir)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	client := o.llm
	if client == nil {
		openaiClient, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.OpenAIBaseURL, cfg.OpenAITimeout)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: %w", err)
		}
		client = openaiClient
	}

	app := &App{
		Config:    cfg,
		LLM:       client,
		Extractor: extractor,
		Generator: structured.Extractor{LLM: client, Model: cfg.LLMModel},
		Health:    health.NewService(),
	}
	app.ResumeService = &resumes.Service{Extractor: app.Extractor, Generator: app.Generator}
	app.ResumeHandler = resumes.NewHandler(app.ResumeService, cfg.MaxUploadBytes)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		Health:        app.Health,
		ResumeHandler: app.ResumeHandler,
	})

	return app, nil
}
