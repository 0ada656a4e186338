package chrono

import "time"

// API is the interface that anything depending on the system clock should use.
type API interface {
	// Now returns the current time as Pacific civil time.
	Now() time.Time
}

// Clock returns the current instant, usually time.Now.
type Clock func() time.Time

// StandardImpl is the standard implementation of API.
type StandardImpl struct {
	clock Clock
}

// NewStandardImpl is the constructor of StandardImpl, a nil clock means time.Now.
func NewStandardImpl(clock Clock) StandardImpl {
	if clock == nil {
		clock = time.Now
	}
	return StandardImpl{clock: clock}
}

func (s StandardImpl) Now() time.Time {
	clock := s.clock
	if clock == nil {
		clock = time.Now
	}
	return ConvertUTCToPacific(clock())
}
