package service

import (
	"biteutil/internal/assert"
	"biteutil/internal/components/chrono"
	"biteutil/internal/components/telemetry"
	"biteutil/lib/jsonutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	report_request_count = "http.request-count"
	report_dump_response = "http.dump-response"
	report_nav_no_match  = "nav.set-active"
)

type coreAPIs struct {
	clock  chrono.API
	tel    telemetry.API
	codec  jsonutil.Codec
	tracer trace.Tracer
}

// NewCoreAPIs initializes the collection of common APIs the handlers need.
func NewCoreAPIs(options ...CoreAPIsOption) coreAPIs {
	cfg := coreAPIsConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	apis := coreAPIs{
		clock:  chrono.NewStandardImpl(nil),
		tel:    telemetry.SlogAPI{},
		tracer: otel.Tracer("biteutil/service"),
	}
	if cfg.clock != nil {
		apis.clock = cfg.clock
	}
	if cfg.tel != nil {
		apis.tel = cfg.tel
	}

	apis.tel = telemetry.NewScopedAPI("service", apis.tel)
	apis.codec = jsonutil.NewCodec(apis.tel)

	return apis
}

type coreAPIsConfig struct {
	clock chrono.API
	tel   telemetry.API
}

type CoreAPIsOption func(cfg *coreAPIsConfig)

func WithCustomClock(clock chrono.API) CoreAPIsOption {
	return func(cfg *coreAPIsConfig) {
		cfg.clock = clock
	}
}

func WithCustomTelemetryAPI(tel telemetry.API) CoreAPIsOption {
	return func(cfg *coreAPIsConfig) {
		cfg.tel = tel
	}
}

type Config struct {
	// PercentDigits is used by /v1/percent when the request has no digits.
	PercentDigits int
}

// UtilService serves the helper functions over HTTP.
type UtilService struct {
	coreAPIs
	config Config
}

// NewUtilService creates a UtilService
func NewUtilService(coreAPIs coreAPIs, config Config) UtilService {
	assert.NotNil(coreAPIs.clock, "clock")
	assert.NotNil(coreAPIs.tel, "telemetry")

	return UtilService{
		coreAPIs: coreAPIs,
		config:   config,
	}
}
