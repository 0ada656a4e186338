package telemetry

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	report_resty_request  = "resty.request"
	report_resty_response = "resty.response"
)

type instrumentResty struct {
	tel       API
	idcounter *uint64
}

// InstrumentResty reports every request the client makes, the matching
// response with its latency, and transport errors as broken.
func InstrumentResty(client *resty.Client, tel API) {
	var idcounter uint64
	i := instrumentResty{tel: tel, idcounter: &idcounter}

	client.OnBeforeRequest(i.onBeforeRequest)
	client.OnAfterResponse(i.onAfterResponse)
	client.OnError(i.onError)
}

type reqCtxKeyType int

var reqCtxKey reqCtxKeyType

type reqCtx struct {
	id uint64
	// only differences are taken, so the wall clock is fine here
	startTime time.Time
}

func (i instrumentResty) onBeforeRequest(_ *resty.Client, req *resty.Request) error {
	id := atomic.AddUint64(i.idcounter, 1)
	req.SetContext(context.WithValue(req.Context(), reqCtxKey, reqCtx{
		id:        id,
		startTime: time.Now(),
	}))
	i.tel.ReportDebug(
		report_resty_request,
		slog.Uint64("id", id),
		slog.String("method", req.Method),
		slog.String("url", req.URL),
	)
	return nil
}

func elapsed(ctx context.Context) (uint64, time.Duration) {
	rc, ok := ctx.Value(reqCtxKey).(reqCtx)
	if !ok {
		return 0, 0
	}
	return rc.id, time.Since(rc.startTime)
}

func (i instrumentResty) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	id, duration := elapsed(res.Request.Context())
	i.tel.ReportDebug(
		report_resty_response,
		slog.Uint64("id", id),
		slog.Duration("duration", duration),
		slog.Int("status", res.StatusCode()),
	)
	return nil
}

func (i instrumentResty) onError(req *resty.Request, err error) {
	id, duration := elapsed(req.Context())
	i.tel.ReportBroken(
		report_resty_response,
		err,
		slog.Uint64("id", id),
		slog.String("method", req.Method),
		slog.String("url", req.URL),
		slog.Duration("duration", duration),
	)
}
