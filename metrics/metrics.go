// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "attraction_votes"

// Delete scopes
const (
	ScopeSingle = "single"
	ScopeAll    = "all"
)

type HTTPMetrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

type VoteMetrics struct {
	Recorded prometheus.Counter
	Deleted  *prometheus.CounterVec
}

// Collectors are registered once on the default registry
var (
	HTTP  = newHTTPMetrics()
	Votes = newVoteMetrics()
)

func newHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		Requests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		Duration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Histogram of request handling times",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

func newVoteMetrics() *VoteMetrics {
	return &VoteMetrics{
		Recorded: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_recorded_total",
				Help:      "Total number of votes inserted",
			},
		),
		Deleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "votes_deleted_total",
				Help:      "Total number of vote rows deleted",
			},
			[]string{"scope"},
		),
	}
}

// Instrument records request count and latency for a route pattern
func Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		HTTP.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTP.Duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
