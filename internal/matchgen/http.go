package matchgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/courtside/deuce/pkg/logger"
)

// HTTP constants.
const (
	statusOK = 200
)

// submitMatches posts all generated matches concurrently and verifies
// each response.
func submitMatches(ctx context.Context, config *Config, matches []Match, stats *Stats) error {
	client := &http.Client{Timeout: config.Timeout}
	url := config.BaseURL + "/adjustments"

	var (
		submitted     atomic.Int64
		successful    atomic.Int64
		failed        atomic.Int64
		verifyErrors  atomic.Int64
		fallbacksSeen atomic.Int64
	)

	jobs := make(chan Match)
	var wg sync.WaitGroup
	for w := 0; w < config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				submitted.Add(1)
				resp, err := postMatch(ctx, client, url, m)
				if err != nil {
					failed.Add(1)
					logger.Get().Warn(ctx, "submission failed",
						logger.String("requestID", m.RequestID),
						logger.Error(err))
					continue
				}
				successful.Add(1)
				if m.AllSegmentsInvalid {
					fallbacksSeen.Add(1)
				}
				if err := verifyResponse(m, resp); err != nil {
					verifyErrors.Add(1)
					logger.Get().Warn(ctx, "response verification failed",
						logger.String("requestID", m.RequestID),
						logger.Error(err))
				}
			}
		}()
	}

	for _, m := range matches {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return fmt.Errorf("submission cancelled: %w", ctx.Err())
		case jobs <- m:
		}
	}
	close(jobs)
	wg.Wait()

	stats.MatchesSubmitted = int(submitted.Load())
	stats.MatchesSuccessful = int(successful.Load())
	stats.MatchesFailed = int(failed.Load())
	stats.VerificationErrors = int(verifyErrors.Load())
	stats.FallbacksObserved = int(fallbacksSeen.Load())
	return nil
}

// postMatch submits one match and decodes the adjustment response.
func postMatch(ctx context.Context, client *http.Client, url string, m Match) (*AdjustmentResponse, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal match: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", m.RequestID)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != statusOK {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var out AdjustmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := &http.Client{Timeout: config.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.BaseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Any 200 counts as healthy (the endpoint serves Prometheus metrics)
	if resp.StatusCode != statusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}
