package chrono

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestFirstSundayOnOrAfter(t *testing.T) {
	cases := []struct {
		in       time.Time
		expected time.Time
	}{
		// 2024-03-08 is a Friday
		{
			in:       time.Date(2024, time.March, 8, 2, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.March, 10, 2, 0, 0, 0, time.UTC),
		},
		// already a Sunday
		{
			in:       time.Date(2020, time.March, 8, 2, 0, 0, 0, time.UTC),
			expected: time.Date(2020, time.March, 8, 2, 0, 0, 0, time.UTC),
		},
		// Monday moves the full six days
		{
			in:       time.Date(2021, time.November, 1, 1, 0, 0, 0, time.UTC),
			expected: time.Date(2021, time.November, 7, 1, 0, 0, 0, time.UTC),
		},
		// crosses a month boundary
		{
			in:       time.Date(2024, time.August, 29, 13, 45, 0, 0, time.UTC),
			expected: time.Date(2024, time.September, 1, 13, 45, 0, 0, time.UTC),
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, FirstSundayOnOrAfter(test.in), test.in.String())
	}
}

func TestFirstSundayKeepsWallClock(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("no tz database available:", err)
	}
	// 2024-03-09 is the Saturday before the spring forward.
	d := time.Date(2024, time.March, 9, 12, 0, 0, 0, la)
	sunday := FirstSundayOnOrAfter(d)
	require.Equal(t, time.Sunday, sunday.Weekday())
	require.Equal(t, 12, sunday.Hour())
	require.Equal(t, la, sunday.Location())
}

func TestMarchStartIsSecondSunday(t *testing.T) {
	startRule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.YEARLY,
		Bymonth:   []int{3},
		Byweekday: []rrule.Weekday{rrule.SU.Nth(2)},
		Dtstart:   time.Date(2007, time.January, 1, 2, 0, 0, 0, time.UTC),
		Until:     time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	endRule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.YEARLY,
		Bymonth:   []int{11},
		Byweekday: []rrule.Weekday{rrule.SU.Nth(1)},
		Dtstart:   time.Date(2007, time.January, 1, 1, 0, 0, 0, time.UTC),
		Until:     time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	starts := startRule.All()
	ends := endRule.All()
	require.Len(t, starts, 2100-2007+1)
	require.Len(t, ends, 2100-2007+1)

	for i, year := 0, 2007; year <= 2100; i, year = i+1, year+1 {
		window := DSTWindowFor(year)

		require.Equal(t, time.Sunday, window.Start.Weekday())
		require.GreaterOrEqual(t, window.Start.Day(), 8)
		require.LessOrEqual(t, window.Start.Day(), 14)

		require.True(t, starts[i].Equal(window.Start), "start %d: %s != %s", year, starts[i], window.Start)
		require.True(t, ends[i].Equal(window.End), "end %d: %s != %s", year, ends[i], window.End)
	}
}

func TestPacificOffset(t *testing.T) {
	cases := []struct {
		naive  time.Time
		offset time.Duration
		abbrev string
	}{
		{naive: time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC), offset: -8 * time.Hour, abbrev: "PST"},
		{naive: time.Date(2024, time.March, 10, 1, 59, 59, 0, time.UTC), offset: -8 * time.Hour, abbrev: "PST"},
		{naive: time.Date(2024, time.March, 10, 2, 0, 0, 0, time.UTC), offset: -7 * time.Hour, abbrev: "PDT"},
		{naive: time.Date(2024, time.July, 4, 15, 30, 0, 0, time.UTC), offset: -7 * time.Hour, abbrev: "PDT"},
		{naive: time.Date(2024, time.November, 3, 0, 59, 59, 0, time.UTC), offset: -7 * time.Hour, abbrev: "PDT"},
		{naive: time.Date(2024, time.November, 3, 1, 0, 0, 0, time.UTC), offset: -8 * time.Hour, abbrev: "PST"},
		{naive: time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), offset: -8 * time.Hour, abbrev: "PST"},
	}

	for _, test := range cases {
		offset, abbrev := PacificOffset(test.naive)
		require.Equal(t, test.offset, offset, test.naive.String())
		require.Equal(t, test.abbrev, abbrev, test.naive.String())

		require.Equal(t, test.offset, Pacific{}.UTCOffset(test.naive))
		require.Equal(t, test.abbrev, Pacific{}.TZName(test.naive))
	}
}

func TestPacificOffsetIgnoresLocation(t *testing.T) {
	// the same wall reading gives the same answer no matter which zone it
	// was built in.
	tokyo := time.FixedZone("JST", 9*60*60)
	reading := time.Date(2024, time.March, 10, 2, 30, 0, 0, tokyo)
	offset, abbrev := PacificOffset(reading)
	require.Equal(t, -7*time.Hour, offset)
	require.Equal(t, "PDT", abbrev)
	require.Equal(t, time.Hour, Pacific{}.DST(reading))
}

func TestConvertUTCToPacific(t *testing.T) {
	cases := []struct {
		utc      time.Time
		expected time.Time
		abbrev   string
	}{
		// one second before 2am PST on 2024-03-10
		{
			utc:      time.Date(2024, time.March, 10, 9, 59, 59, 0, time.UTC),
			expected: time.Date(2024, time.March, 10, 1, 59, 59, 0, time.UTC),
			abbrev:   "PST",
		},
		{
			utc:      time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.March, 10, 3, 0, 0, 0, time.UTC),
			abbrev:   "PDT",
		},
		{
			utc:      time.Date(2021, time.July, 4, 22, 30, 0, 0, time.UTC),
			expected: time.Date(2021, time.July, 4, 15, 30, 0, 0, time.UTC),
			abbrev:   "PDT",
		},
		// one second before 1am PST (2am PDT) on 2024-11-03
		{
			utc:      time.Date(2024, time.November, 3, 8, 59, 59, 0, time.UTC),
			expected: time.Date(2024, time.November, 3, 1, 59, 59, 0, time.UTC),
			abbrev:   "PDT",
		},
		{
			utc:      time.Date(2024, time.November, 3, 9, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.November, 3, 1, 0, 0, 0, time.UTC),
			abbrev:   "PST",
		},
		// year boundary
		{
			utc:      time.Date(2025, time.January, 1, 3, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.December, 31, 19, 0, 0, 0, time.UTC),
			abbrev:   "PST",
		},
	}

	for _, test := range cases {
		pacific := ConvertUTCToPacific(test.utc)

		require.True(t, pacific.Equal(test.utc), "conversion must not change the instant")
		require.Equal(t, test.expected, Naive(pacific), test.utc.String())

		name, offset := pacific.Zone()
		require.Equal(t, test.abbrev, name)
		if test.abbrev == "PDT" {
			require.Equal(t, -7*60*60, offset)
		} else {
			require.Equal(t, -8*60*60, offset)
		}
	}
}

func TestConvertAgreesWithTZDatabase(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Skip("no tz database available:", err)
	}

	start := time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	for instant := start; instant.Before(end); instant = instant.Add(61 * time.Hour) {
		expected := instant.In(la)
		actual := ConvertUTCToPacific(instant)

		expectedName, expectedOffset := expected.Zone()
		actualName, actualOffset := actual.Zone()
		require.Equal(t, expectedName, actualName, instant.String())
		require.Equal(t, expectedOffset, actualOffset, instant.String())
		require.Equal(t, Naive(expected), Naive(actual), instant.String())
	}
}

func TestConvertNonUTCInput(t *testing.T) {
	eastern := time.FixedZone("EST", -5*60*60)
	in := time.Date(2024, time.January, 15, 12, 0, 0, 0, eastern)
	out := ConvertUTCToPacific(in)
	require.True(t, out.Equal(in))
	require.Equal(t, 9, out.Hour())
}

func TestFormatPacificStartString(t *testing.T) {
	cases := []struct {
		in       time.Time
		expected string
	}{
		{
			in:       time.Date(2021, time.July, 4, 15, 30, 0, 0, pdt),
			expected: "7/4/2021 15:30 PST",
		},
		{
			in:       time.Date(2024, time.January, 2, 3, 5, 0, 0, pst),
			expected: "1/2/2024 3:5 PST",
		},
		{
			in:       time.Date(1999, time.December, 31, 0, 0, 59, 0, time.UTC),
			expected: "12/31/1999 0:0 PST",
		},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, FormatPacificStartString(test.in))
	}
}

func TestStandardImplNow(t *testing.T) {
	fixed := time.Date(2021, time.July, 4, 22, 30, 0, 0, time.UTC)
	clock := NewStandardImpl(func() time.Time { return fixed })

	now := clock.Now()
	require.True(t, now.Equal(fixed))
	require.Equal(t, "7/4/2021 15:30 PST", FormatPacificStartString(now))

	var zero StandardImpl
	require.False(t, zero.Now().IsZero())
}
