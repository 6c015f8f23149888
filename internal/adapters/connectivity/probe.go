package connectivity

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Prober periodically issues a cheap HTTP request against a health endpoint
// and feeds the outcome into a Monitor.
type Prober struct {
	monitor  *Monitor
	client   *http.Client
	url      string
	interval time.Duration
	logger   *slog.Logger
}

// NewProber creates a prober checking url every interval.
func NewProber(monitor *Monitor, url string, interval time.Duration, logger *slog.Logger) *Prober {
	return &Prober{
		monitor:  monitor,
		client:   &http.Client{Timeout: 5 * time.Second},
		url:      url,
		interval: interval,
		logger:   logger,
	}
}

// Run probes immediately, then on every tick until ctx is cancelled.
// It blocks; callers run it in a goroutine.
func (p *Prober) Run(ctx context.Context) {
	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *Prober) probe(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		p.logger.Error("Failed to build connectivity probe request", slog.String("error", err.Error()))
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.monitor.SetOnline(false)
		return
	}
	resp.Body.Close()

	p.monitor.SetOnline(resp.StatusCode < http.StatusInternalServerError)
}
