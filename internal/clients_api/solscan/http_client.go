package solscan

// HTTP transport for the Solscan pro API
// A Session lives for a single command invocation; callers must Close it on every exit path
// Sends plain GET requests with the static API-key header, no retries and no rate limiting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"advisoor-bot/internal/infra/config"
	logging "advisoor-bot/internal/infra/log"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 30 * time.Second

// Session holds the per-invocation HTTP client and endpoint configuration
type Session struct {
	httpClient  *http.Client
	apiKey      string
	marketBase  string
	holdersBase string
}

// NewSession builds a request-scoped session from the Solscan configuration
func NewSession(cfg *config.SolscanConfig) *Session {
	timeout := defaultRequestTimeout
	if cfg.RequestTimeout > 0 {
		timeout = time.Duration(cfg.RequestTimeout) * time.Second
	}

	return &Session{
		apiKey:      cfg.APIKey,
		marketBase:  cfg.MarketDataBase,
		holdersBase: cfg.HoldersBase,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DisableKeepAlives: false,
				MaxIdleConns:      10,
				IdleConnTimeout:   90 * time.Second,
			},
		},
	}
}

// Close tears the session down; safe to defer right after NewSession
func (s *Session) Close() {
	s.httpClient.CloseIdleConnections()
}

func setSolscanHeaders(req *http.Request, apiKey string) {
	req.Header.Set("token", apiKey)
	req.Header.Set("accept", "*/*")
}

// doGET performs one GET and returns the body with the HTTP status code
// A non-2xx status is not an error here; fetchers decide how to degrade
func (s *Session) doGET(ctx context.Context, url string) ([]byte, int, error) {
	requestID := logging.GenerateRequestID()
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	setSolscanHeaders(req, s.apiKey)

	logging.LogInfo("HTTP request",
		zap.String("request_id", requestID),
		zap.String("method", "GET"),
		zap.String("url", url))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logging.LogError("HTTP request failed",
			zap.String("request_id", requestID),
			zap.String("url", url),
			zap.Error(err))
		return nil, 0, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	logging.LogInfo("HTTP response",
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(startTime).Milliseconds()))

	return body, resp.StatusCode, nil
}
