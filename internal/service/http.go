package service

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"

	"biteutil/lib/jsonutil"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the routes of the service wrapped in request tracing.
func (s UtilService) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /v1/pacific", s.handlePacific)
	mux.HandleFunc("GET /v1/dst-window", s.handleDSTWindow)
	mux.HandleFunc("GET /v1/percent", s.handlePercent)
	mux.HandleFunc("POST /v1/nav/active", s.handleSetActiveNav)

	var requests int64
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := uuid.NewString()
		ctx, span := s.tracer.Start(
			r.Context(),
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attribute.String("request.id", requestId)),
		)
		defer span.End()

		w.Header().Set("X-Request-Id", requestId)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		mux.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.status_code", rec.status))
		if rec.status >= 500 {
			span.SetStatus(codes.Error, http.StatusText(rec.status))
		}
		s.tel.ReportDebug(
			"request",
			slog.String("id", requestId),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
		)
		s.tel.ReportCount(report_request_count, atomic.AddInt64(&requests, 1))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s UtilService) writeJSON(w http.ResponseWriter, status int, value any) {
	text, err := s.codec.Dump(value)
	if err != nil {
		s.tel.ReportBroken(report_dump_response, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to encode response"}`))
		return
	}
	if text == "" {
		text = "null"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, text)
}

func (s UtilService) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// readJSON decodes the request body into out, answering the request itself
// when that fails.
func (s UtilService) readJSON(w http.ResponseWriter, r *http.Request, out any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusRequestEntityTooLarge, err)
		return false
	}
	err = s.codec.Decode(string(body), out)
	if errors.Is(err, jsonutil.ErrEmpty) {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("request body is empty"))
		return false
	}
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}
