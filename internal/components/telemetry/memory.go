package telemetry

import "sync"

type ReportKind int

const (
	KindBroken ReportKind = iota
	KindWarning
	KindDebug
	KindCount
)

// Report is a single call recorded by MemoryAPI.
type Report struct {
	Kind   ReportKind
	ID     string
	Params []any
	Count  int64
}

// MemoryAPI records every report in memory so tests can assert on what a
// component logged. It is safe for concurrent use.
type MemoryAPI struct {
	mu      sync.Mutex
	reports []Report
}

func NewMemoryAPI() *MemoryAPI {
	return &MemoryAPI{}
}

func (m *MemoryAPI) record(r Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, r)
}

func (m *MemoryAPI) ReportBroken(id string, params ...any) {
	m.record(Report{Kind: KindBroken, ID: id, Params: params})
}

func (m *MemoryAPI) ReportWarning(id string, params ...any) {
	m.record(Report{Kind: KindWarning, ID: id, Params: params})
}

func (m *MemoryAPI) ReportDebug(msg string, params ...any) {
	m.record(Report{Kind: KindDebug, ID: msg, Params: params})
}

func (m *MemoryAPI) ReportCount(id string, count int64) {
	m.record(Report{Kind: KindCount, ID: id, Count: count})
}

// Reports returns a copy of everything recorded so far.
func (m *MemoryAPI) Reports() []Report {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Report, len(m.reports))
	copy(out, m.reports)
	return out
}

// Filter returns the recorded reports of the given kind.
func (m *MemoryAPI) Filter(kind ReportKind) []Report {
	var out []Report
	for _, r := range m.Reports() {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
