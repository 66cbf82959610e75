package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/fatflowers/prayerbook/pkg/config"
	"github.com/fatflowers/prayerbook/pkg/logctx"
)

const maxResponseBytes = 1 << 20

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type generateBody struct {
	Messages []message      `json:"messages"`
	Schema   map[string]any `json:"schema"`
}

// HTTPGenerator calls a structured-output text generation endpoint. Each
// attempt has its own timeout; failed attempts are retried after a fixed
// delay.
type HTTPGenerator struct {
	endpoint   string
	apiKey     string
	client     *http.Client
	timeout    time.Duration
	retries    uint64
	retryDelay time.Duration
	l          *zap.SugaredLogger
}

func NewHTTPGenerator(cfg config.GenerationConfig, client *http.Client, l *zap.SugaredLogger) *HTTPGenerator {
	if client == nil {
		client = &http.Client{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	return &HTTPGenerator{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		client:     client,
		timeout:    cfg.Timeout,
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
		l:          l,
	}
}

func (g *HTTPGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	body, err := json.Marshal(generateBody{
		Messages: []message{{Role: "user", Content: buildPrompt(req)}},
		Schema:   resultSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("encode generation request: %w", err)
	}

	lg := logctx.FromCtx(ctx, g.l)
	var (
		out     *Result
		attempt int
	)
	b := retry.WithMaxRetries(g.retries, retry.NewConstant(g.retryDelay))
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		res, err := g.call(ctx, body)
		if err != nil {
			lg.Warnw("generation attempt failed", "attempt", attempt, "err", err)
			return retry.RetryableError(err)
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (g *HTTPGenerator) call(ctx context.Context, body []byte) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
	if tid := logctx.Value(ctx, logctx.TraceIDKey); tid != "" {
		httpReq.Header.Set("X-Request-ID", tid)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read generation response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("generation endpoint returned %d", resp.StatusCode)
	}

	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeneration, err)
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &res, nil
}
