package chrono

import (
	"fmt"
	"time"
)

const (
	standardOffset = -8 * time.Hour
	daylightOffset = -7 * time.Hour

	AbbrevStandard = "PST"
	AbbrevDaylight = "PDT"
)

var (
	pst = time.FixedZone(AbbrevStandard, int(standardOffset/time.Second))
	pdt = time.FixedZone(AbbrevDaylight, int(daylightOffset/time.Second))
)

// FirstSundayOnOrAfter returns d moved forward to the next Sunday, or d itself
// if it already falls on a Sunday. The wall clock and location of d are kept.
func FirstSundayOnOrAfter(d time.Time) time.Time {
	// time.Weekday starts at Sunday=0, shift so that Monday=0..Sunday=6.
	weekday := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, (6-weekday)%7)
}

// DSTWindow is the half-open range [Start, End) of Pacific wall clock
// readings during which daylight time applies. Both ends are naive: their
// fields are the wall clock and their location is always UTC.
type DSTWindow struct {
	Start time.Time
	End   time.Time
}

// DSTWindowFor computes the window for the given year: 2am on the second
// Sunday in March until 1am on the first Sunday in November.
func DSTWindowFor(year int) DSTWindow {
	return DSTWindow{
		Start: FirstSundayOnOrAfter(time.Date(year, time.March, 8, 2, 0, 0, 0, time.UTC)),
		End:   FirstSundayOnOrAfter(time.Date(year, time.November, 1, 1, 0, 0, 0, time.UTC)),
	}
}

// Contains reports whether the naive wall clock reading falls inside the window.
func (w DSTWindow) Contains(naive time.Time) bool {
	naive = Naive(naive)
	return !naive.Before(w.Start) && naive.Before(w.End)
}

// Naive strips the location from t, keeping its wall clock fields.
func Naive(t time.Time) time.Time {
	return time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)
}

// PacificOffset interprets the wall clock reading of t as Pacific local time
// and returns the UTC offset and abbreviation in effect for that reading.
//
// The location of t is ignored: the comparison is made between wall clock
// readings, not instants.
func PacificOffset(t time.Time) (time.Duration, string) {
	if DSTWindowFor(t.Year()).Contains(t) {
		return daylightOffset, AbbrevDaylight
	}
	return standardOffset, AbbrevStandard
}

// ConvertUTCToPacific re-expresses the instant in Pacific civil time. The
// returned time carries a fixed zone named PST or PDT.
//
// The DST rule is consulted with the standard time reading of the instant,
// so 2am PST on the March transition day is the first PDT instant and 1am
// PST on the November transition day is the first PST instant again.
func ConvertUTCToPacific(utc time.Time) time.Time {
	utc = utc.UTC()
	offset, _ := PacificOffset(utc.Add(standardOffset))
	if offset == daylightOffset {
		return utc.In(pdt)
	}
	return utc.In(pst)
}

// FormatPacificStartString renders t as "M/D/YYYY h:m PST". Fields are not
// zero padded and the label is always PST, even for daylight time.
func FormatPacificStartString(t time.Time) string {
	return fmt.Sprintf(
		"%d/%d/%d %d:%d PST",
		int(t.Month()), t.Day(), t.Year(),
		t.Hour(), t.Minute(),
	)
}

// Pacific exposes the rule as the three questions a zone answers for a
// wall clock reading.
type Pacific struct{}

func (Pacific) UTCOffset(t time.Time) time.Duration {
	return standardOffset + Pacific{}.DST(t)
}

func (Pacific) DST(t time.Time) time.Duration {
	if DSTWindowFor(t.Year()).Contains(t) {
		return time.Hour
	}
	return 0
}

func (Pacific) TZName(t time.Time) string {
	_, name := PacificOffset(t)
	return name
}
