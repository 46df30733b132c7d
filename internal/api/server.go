// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the manga trading service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"mangatrade/internal/api/handler/v1handler"
	"mangatrade/internal/config"
	"mangatrade/pkg/controller"
	"net/http"
	"time"

	"github.com/go-faster/jx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// KeepAliveMessage is served on GET / so uptime monitors keep the process awake.
const KeepAliveMessage = "Bot is running!"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	// The v1 API is not mounted when no public key is configured.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":10000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// Registerer receives the HTTP collectors; prometheus.DefaultRegisterer when nil.
	Registerer prometheus.Registerer
	// Gatherer is exposed on MetricsPath; prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps

	// Ping reports whether the list store is reachable; used by /healthz.
	Ping func(ctx context.Context) error
}

// healthz answers 200 when the store is reachable and 503 otherwise.
func healthz(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, state := http.StatusOK, "ok"
		if ping != nil {
			if err := ping(r.Context()); err != nil {
				status, state = http.StatusServiceUnavailable, "unavailable"
			}
		}

		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		e.Obj(func(e *jx.Encoder) {
			e.Field("status", func(e *jx.Encoder) { e.Str(state) })
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(e.Bytes())
	}
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Keep-alive (GET /) and health (GET /healthz) endpoints
// - Prometheus metrics endpoint (MetricsPath) and per-route latency histogram
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes behind bearer authentication
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	reg, gatherer := opts.Registerer, opts.Gatherer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	mux := http.NewServeMux()

	// keep-alive
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(KeepAliveMessage))
	})
	mux.HandleFunc("GET /healthz", healthz(deps.Ping))

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	requestMetrics, err := controller.NewRequestMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("could not register request metrics: %w", err)
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Manga Trade Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	if opts.SecHandlerOptions != nil && opts.SecHandlerOptions.PublicKey != "" {
		secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
		if err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
		v1handler.New(deps.Deps).Register(mux, secHandler)
	}

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	// cors
	handler := controller.WithCORS(mux)

	// request metrics, must see the request the mux annotates with its pattern
	handler = requestMetrics.Wrap(handler)

	// logger
	handler = controller.WithLogger(handler)

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = opts.ReadTimeout
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, timeout, `{"code":"TIMEOUT","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
