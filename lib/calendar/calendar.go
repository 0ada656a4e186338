package calendar

import (
	"fmt"
	"io"
	"time"

	"biteutil/internal/components/chrono"

	ics "github.com/arran4/golang-ical"
)

// Transition is one switch between PST and PDT. At is the naive Pacific
// wall clock reading at which the switch happens.
type Transition struct {
	At   time.Time
	From string
	To   string
}

// Transitions lists the transitions of every year in [from, to] in order.
func Transitions(from, to int) []Transition {
	var out []Transition
	for year := from; year <= to; year++ {
		window := chrono.DSTWindowFor(year)
		out = append(out,
			Transition{At: window.Start, From: chrono.AbbrevStandard, To: chrono.AbbrevDaylight},
			Transition{At: window.End, From: chrono.AbbrevDaylight, To: chrono.AbbrevStandard},
		)
	}
	return out
}

func (t Transition) Summary() string {
	return fmt.Sprintf("%s -> %s at %d:%02d", t.From, t.To, t.At.Hour(), t.At.Minute())
}

// NewDSTCalendar builds an iCalendar with one all-day event per transition.
// dtstamp is the creation time stamped on every event.
func NewDSTCalendar(from, to int, dtstamp time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//biteutil//pacific dst//EN")
	cal.SetName("Pacific daylight saving time")

	for _, t := range Transitions(from, to) {
		event := cal.AddEvent(fmt.Sprintf("%s-%s@biteutil", t.At.Format("20060102"), t.To))
		event.SetDtStampTime(dtstamp)
		event.SetSummary(t.Summary())
		event.SetAllDayStartAt(t.At)
		event.SetAllDayEndAt(t.At.AddDate(0, 0, 1))
	}
	return cal
}

// WriteDSTCalendar serializes NewDSTCalendar to w.
func WriteDSTCalendar(w io.Writer, from, to int, dtstamp time.Time) error {
	return NewDSTCalendar(from, to, dtstamp).SerializeTo(w)
}
