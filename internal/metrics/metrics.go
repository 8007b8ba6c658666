package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitWaits  int
	lastWait        time.Duration
	lastCallLatency time.Duration
}

type feedStats struct {
	cacheHits     int
	cacheMisses   int
	mockFallbacks int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// feed serving. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu          sync.Mutex
	providers   map[string]*providerStats
	feeds       map[string]*feedStats
	predictions int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		feeds:     make(map[string]*feedStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimitWait tracks time spent waiting on the shared request pacer.
func (r *Recorder) RecordRateLimitWait(provider string, waited time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.rateLimitWaits++
	if waited > 0 {
		stats.lastWait = waited
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimitWait(provider, waited)
	}
}

// RecordCacheHit counts a feed served straight from the cache.
func (r *Recorder) RecordCacheHit(feed string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureFeed(feed).cacheHits++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(feed, true)
	}
}

// RecordCacheMiss counts a feed that had to go upstream.
func (r *Recorder) RecordCacheMiss(feed string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureFeed(feed).cacheMisses++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(feed, false)
	}
}

// RecordMockFallback counts a feed answered with generated data instead of a
// real provider response.
func (r *Recorder) RecordMockFallback(feed string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.ensureFeed(feed).mockFallbacks++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordMockFallback(feed)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.ProviderSnapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.ProviderSnapshot(provider).Errors
}

// CacheHits returns the cache hits recorded for a feed.
func (r *Recorder) CacheHits(feed string) int {
	return r.FeedSnapshot(feed).CacheHits
}

// CacheMisses returns the cache misses recorded for a feed.
func (r *Recorder) CacheMisses(feed string) int {
	return r.FeedSnapshot(feed).CacheMisses
}

// MockFallbacks returns the mock fallbacks recorded for a feed.
func (r *Recorder) MockFallbacks(feed string) int {
	return r.FeedSnapshot(feed).MockFallbacks
}

// ProviderSnapshot is a copy of the counters for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	RateLimitWaits  int
	LastWait        time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) ProviderSnapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.providers[provider]
	if !ok {
		return ProviderSnapshot{}
	}
	return ProviderSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitWaits:  stats.rateLimitWaits,
		LastWait:        stats.lastWait,
		LastCallLatency: stats.lastCallLatency,
	}
}

// FeedSnapshot is a copy of the counters for one feed.
type FeedSnapshot struct {
	CacheHits     int
	CacheMisses   int
	MockFallbacks int
}

func (r *Recorder) FeedSnapshot(feed string) FeedSnapshot {
	if r == nil {
		return FeedSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.feeds[feed]
	if !ok {
		return FeedSnapshot{}
	}
	return FeedSnapshot{
		CacheHits:     stats.cacheHits,
		CacheMisses:   stats.cacheMisses,
		MockFallbacks: stats.mockFallbacks,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPrediction counts a computed prediction.
func (r *Recorder) RecordPrediction() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.predictions++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPrediction()
	}
}

// Predictions returns the total predictions recorded.
func (r *Recorder) Predictions() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.predictions
}

// ensureProvider expects r.mu to be held.
func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}

// ensureFeed expects r.mu to be held.
func (r *Recorder) ensureFeed(feed string) *feedStats {
	stats, ok := r.feeds[feed]
	if !ok {
		stats = &feedStats{}
		r.feeds[feed] = stats
	}
	return stats
}
