package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"resume-parser/internal/bootstrap"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/telemetry"
)

// proxy builds the application on the first invocation and reuses it for the
// lifetime of the Lambda execution environment.
type proxy struct {
	load func() config.Config

	once    sync.Once
	initErr error
	gin     *ginadapter.GinLambdaV2
}

func newProxy(load func() config.Config) *proxy {
	return &proxy{load: load}
}

func (p *proxy) init() {
	cfg := p.load()
	if err := cfg.Validate(); err != nil {
		p.initErr = err
		return
	}
	telemetry.Configure(cfg.LogLevel, nil)

	app, err := bootstrap.Build(cfg)
	if err != nil {
		p.initErr = fmt.Errorf("bootstrap build: %w", err)
		return
	}
	p.gin = ginadapter.NewV2(app.Router)
}

func (p *proxy) handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	p.once.Do(p.init)
	if p.initErr != nil {
		telemetry.Error("lambda.bootstrap_failed", map[string]any{"error": p.initErr})
		return errorResponse("bootstrap failed"), nil
	}
	return p.gin.ProxyWithContext(ctx, req)
}

func errorResponse(message string) events.APIGatewayV2HTTPResponse {
	body, _ := json.Marshal(map[string]any{
		"error": map[string]any{"code": "internal", "message": message},
	})
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       string(body),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func main() {
	lambda.Start(newProxy(config.Load).handle)
}
