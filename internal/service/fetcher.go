package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/ioe2040/supporter-wall-go/pkg/errors"
)

type FetcherService struct {
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

func NewFetcherService(timeout time.Duration, userAgent string, logger *zap.Logger) *FetcherService {
	return &FetcherService{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch retrieves the raw page markup. Transport failures and non-success
// statuses abort the run: this is a scheduled batch job with no cached
// fallback, so there is no retry and no backoff.
func (s *FetcherService) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperrors.NewFetchError("invalid request", url, 0, err)
	}

	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewFetchError("HTTP request failed", url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.NewFetchError(
			fmt.Sprintf("unexpected status code: %d", resp.StatusCode), url, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewFetchError("failed to read response body", url, resp.StatusCode, err)
	}

	s.logger.Debug("Page fetched",
		zap.String("url", url),
		zap.Int("bytes", len(body)))

	return string(body), nil
}
