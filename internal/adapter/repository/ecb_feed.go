package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecb-rates/internal/domain/model"
	"ecb-rates/internal/metrics"
	"ecb-rates/pkg/logger"
)

const DefaultBaseURL = "https://www.ecb.europa.eu/stats/eurofxref"

var windowPaths = map[model.Window]string{
	model.WindowCurrent: "eurofxref-daily.xml",
	model.WindowRecent:  "eurofxref-hist-90d.xml",
	model.WindowFull:    "eurofxref-hist.xml",
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ECBFeed downloads the European Central Bank reference rate feeds.
type ECBFeed struct {
	baseURL    string
	httpClient HTTPClient
	log        *logger.Logger
	metrics    *metrics.Metrics
}

func NewECBFeed(baseURL string, timeout time.Duration, log *logger.Logger, m *metrics.Metrics) *ECBFeed {
	return NewECBFeedWithClient(baseURL, &http.Client{Timeout: timeout}, log, m)
}

func NewECBFeedWithClient(baseURL string, client HTTPClient, log *logger.Logger, m *metrics.Metrics) *ECBFeed {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	f := &ECBFeed{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		log:        log,
		metrics:    m,
	}

	// expose a zero series per window before the first fetch
	for _, window := range model.Windows {
		m.FeedFetchDuration.WithLabelValues(window.String())
		m.FeedFetchesTotal.WithLabelValues(window.String(), outcome(nil))
	}
	return f
}

// URL is the feed address used for window.
func (f *ECBFeed) URL(window model.Window) (string, error) {
	path, ok := windowPaths[window]
	if !ok {
		return "", fmt.Errorf("no feed for window %s", window)
	}
	return f.baseURL + "/" + path, nil
}

func (f *ECBFeed) Fetch(ctx context.Context, window model.Window) (model.Batch, error) {
	start := time.Now()
	batch, err := f.fetch(ctx, window)
	f.metrics.FeedFetchDuration.WithLabelValues(window.String()).Observe(time.Since(start).Seconds())
	f.metrics.FeedFetchesTotal.WithLabelValues(window.String(), outcome(err)).Inc()

	if err != nil {
		f.log.Error("Failed to fetch rate feed", "window", window.String(), "error", err)
		return nil, err
	}

	days := batch.Days()
	f.log.Info("Fetched rate feed",
		"window", window.String(),
		"days", len(days),
		"oldest", days[0].String(),
		"newest", days[len(days)-1].String(),
		"duration", time.Since(start),
	)
	return batch, nil
}

func (f *ECBFeed) fetch(ctx context.Context, window model.Window) (model.Batch, error) {
	url, err := f.URL(window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", model.ErrTransport, err)
	}
	req.Header.Set("Accept", "application/xml, text/xml")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: feed returned non-OK status: %d", model.ErrTransport, resp.StatusCode)
	}

	return ParseFeed(resp.Body)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, model.ErrParse):
		return "parse_error"
	default:
		return "transport_error"
	}
}
