package telemetry

import "fmt"

// API is where components send logs and metrics, swapped for MemoryAPI in
// tests so reports can be asserted on.
type API interface {
	// ReportBroken reports a failure that someone should look at. id names
	// the component in lowercase dotted form (json.parse, http.dump-response),
	// details go in params. slog.Attr params keep their key.
	ReportBroken(id string, params ...any)
	// ReportWarning reports something unexpected that still got handled,
	// ex. nav.set-active when no scope matched.
	ReportWarning(id string, params ...any)
	ReportDebug(msg string, params ...any)
	// ReportCount records the running total of an event, the values are
	// samples and must not be summed.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with "<namespace>: ".
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) scope(id string) string {
	return fmt.Sprintf("%s: %s", s.namespace, id)
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(s.scope(id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(s.scope(id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(s.scope(msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(s.scope(id), count)
}
