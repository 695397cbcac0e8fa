package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"ecb-rates/internal/domain/model"
	"ecb-rates/internal/domain/ports"
	"ecb-rates/internal/metrics"
	"ecb-rates/pkg/logger"
)

// ExchangeService resolves rates for a date from the rate cache, falling
// back to the ECB feed. Each instance owns its cache and in-flight fetches.
type ExchangeService struct {
	feed       ports.FeedFetcher
	cache      ports.RateCache
	log        *logger.Logger
	metrics    *metrics.Metrics
	recentSpan time.Duration
	now        func() time.Time

	// mu makes "look up cache, then join or start a fetch" atomic with
	// respect to a finished fetch writing its batch into the cache.
	mu       sync.Mutex
	inflight singleflight.Group
}

type Option func(*ExchangeService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *ExchangeService) {
		s.now = now
	}
}

// WithRecentSpan sets how far back the trailing feed is trusted to reach.
func WithRecentSpan(span time.Duration) Option {
	return func(s *ExchangeService) {
		if span > 0 {
			s.recentSpan = span
		}
	}
}

func NewExchangeService(feed ports.FeedFetcher, cache ports.RateCache, log *logger.Logger, m *metrics.Metrics, opts ...Option) *ExchangeService {
	s := &ExchangeService{
		feed:       feed,
		cache:      cache,
		log:        log,
		metrics:    m,
		recentSpan: model.RecentWindowSpan,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rate returns the rate described by spec.
func (s *ExchangeService) Rate(ctx context.Context, spec model.RequestSpec) (float64, error) {
	quote, err := s.Quote(ctx, spec)
	if err != nil {
		return 0, err
	}
	return quote.Rate, nil
}

// Quote is Rate plus the day whose table actually served the rate.
func (s *ExchangeService) Quote(ctx context.Context, spec model.RequestSpec) (*model.Quote, error) {
	s.metrics.RateRequestsTotal.Inc()

	now := s.now()
	req, err := model.NewRateRequest(spec, now)
	if err != nil {
		return nil, err
	}

	day, table, err := s.resolve(ctx, req, now)
	if err != nil {
		return nil, err
	}

	rate, err := req.Currency.Rate(day, table)
	if err != nil {
		return nil, err
	}

	return &model.Quote{
		Currency:      req.Currency.String(),
		Rate:          rate,
		RequestedDate: req.Day.Time(),
		RateDate:      day.Time(),
		Fallback:      day != req.Day,
	}, nil
}

func (s *ExchangeService) ConvertCurrency(ctx context.Context, request model.ConversionRequest) (*model.ConversionResult, error) {
	s.metrics.ConversionRequestsTotal.Inc()

	if request.Amount <= 0 {
		return nil, model.ErrInvalidAmount
	}

	rate, date, err := s.conversionRate(ctx, request)
	if err != nil {
		return nil, err
	}

	return &model.ConversionResult{
		FromCurrency: request.FromCurrency,
		ToCurrency:   request.ToCurrency,
		FromAmount:   request.Amount,
		ToAmount:     request.Amount * rate,
		Rate:         rate,
		Date:         date,
	}, nil
}

// conversionRate is the number of "to" units per "from" unit. Tables carry
// no EUR entry, so EUR legs are taken as 1.
func (s *ExchangeService) conversionRate(ctx context.Context, request model.ConversionRequest) (float64, time.Time, error) {
	from, to := request.FromCurrency, request.ToCurrency

	if from == model.EUR && to == model.EUR {
		date := request.Date
		if date.IsZero() {
			date = s.now()
		}
		return 1, model.Normalize(date).Time(), nil
	}

	spec := fmt.Sprintf("%s/%s", to, from)
	switch model.EUR {
	case from:
		spec = to.String()
	case to:
		spec = from.String()
	}

	quote, err := s.Quote(ctx, model.Detailed{
		Date:      request.Date,
		Currency:  spec,
		ExactDate: request.ExactDate,
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	if to == model.EUR {
		return 1 / quote.Rate, quote.RateDate, nil
	}
	return quote.Rate, quote.RateDate, nil
}

// Refresh fetches the current-day feed and stores it, replacing any
// table already cached for that day.
func (s *ExchangeService) Refresh(ctx context.Context) error {
	s.log.Info("Refreshing exchange rates")

	s.mu.Lock()
	results := s.fetchWindow(ctx, model.WindowCurrent, true)
	s.mu.Unlock()

	select {
	case res := <-results:
		if res.Err != nil {
			return res.Err
		}
		// a joined fetch may have been started with storing disabled
		batch := res.Val.(model.Batch)
		s.mu.Lock()
		s.cache.Store(batch)
		s.mu.Unlock()
		s.metrics.CachedDays.Set(float64(s.cache.Len()))

		s.log.Info("Successfully refreshed exchange rates", "days", len(batch))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ExchangeService) resolve(ctx context.Context, req model.RateRequest, now time.Time) (model.Day, model.RateTable, error) {
	s.mu.Lock()
	if req.IgnoreCache {
		s.metrics.CacheLookupsTotal.WithLabelValues("bypass").Inc()
	} else {
		day, table, err := model.ResolveDate(s.cache, req.Day, req.ExactDate)
		if err == nil {
			s.mu.Unlock()
			s.recordHit(req.Day, day)
			return day, table, nil
		}
		s.metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	window := model.SelectWindow(req.Day, req.Current, now, s.recentSpan)
	results := s.fetchWindow(ctx, window, !req.DontStoreCache)
	s.mu.Unlock()

	s.log.Debug("Waiting for feed", "window", window.String(), "day", req.Day.String())

	var res singleflight.Result
	select {
	case res = <-results:
	case <-ctx.Done():
		return model.InvalidDay, nil, ctx.Err()
	}
	if res.Err != nil {
		return model.InvalidDay, nil, res.Err
	}
	if res.Shared {
		s.metrics.FeedFetchesShared.WithLabelValues(window.String()).Inc()
	}

	batch := res.Val.(model.Batch)
	day, table, err := model.ResolveDate(batch, req.Day, req.ExactDate)
	if err != nil && !req.IgnoreCache {
		day, table, err = model.ResolveDate(s.cache, req.Day, req.ExactDate)
	}
	return day, table, err
}

// fetchWindow joins the fetch in flight for window or starts one. Callers
// hold s.mu. Whether the batch is cached is decided by the caller that
// starts the fetch; callers that join inherit it.
func (s *ExchangeService) fetchWindow(ctx context.Context, window model.Window, store bool) <-chan singleflight.Result {
	// joined callers must all see the fetch settle, so it outlives the starter's cancellation
	fetchCtx := context.WithoutCancel(ctx)

	return s.inflight.DoChan(window.String(), func() (interface{}, error) {
		s.log.Debug("Fetching rate feed", "window", window.String(), "store", store)

		batch, err := s.feed.Fetch(fetchCtx, window)
		if err != nil {
			return nil, err
		}

		if store {
			s.mu.Lock()
			s.cache.Store(batch)
			s.mu.Unlock()
			s.metrics.CachedDays.Set(float64(s.cache.Len()))
		}
		return batch, nil
	})
}

func (s *ExchangeService) recordHit(requested, served model.Day) {
	if requested == served {
		s.metrics.CacheLookupsTotal.WithLabelValues("exact").Inc()
		return
	}
	s.metrics.CacheLookupsTotal.WithLabelValues("fallback").Inc()
	s.log.Debug("Serving earlier day from cache", "requested", requested.String(), "served", served.String())
}
