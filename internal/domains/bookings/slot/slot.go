// Package slot implements time-slot parsing and availability evaluation for
// field bookings. It is pure: verdicts derive only from the candidate request
// and the list of already booked slots, so it can be exercised without any
// storage behind it.
package slot

import (
	"errors"
	"strings"
	"time"

	"github.com/bookmyfield/backend/pkg/constant"
)

// ErrMalformedSlot reports a slot string that is not "<start> - <end>" with
// both sides on the 12-hour clock.
var ErrMalformedSlot = errors.New("slot: malformed time slot")

const rangeSeparator = " - "

// Range is a same-day time interval in minutes from midnight, half-open:
// [Start, End).
type Range struct {
	Start int
	End   int
}

// ParseRange parses a slot string such as "10:00 AM - 12:00 PM". The
// "Full Day" sentinel is not a range and must be handled by the caller before
// parsing.
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, rangeSeparator)
	if len(parts) < 2 {
		return Range{}, ErrMalformedSlot
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return Range{}, err
	}

	end, err := parseClock(parts[1])
	if err != nil {
		return Range{}, err
	}

	return Range{Start: start, End: end}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse(constant.ClockFormat, strings.TrimSpace(s))
	if err != nil {
		return 0, ErrMalformedSlot
	}

	return t.Hour()*constant.MinutesPerHour + t.Minute(), nil
}

// Overlaps reports whether two half-open ranges share at least one instant.
// Touching endpoints (a ends exactly when b starts) do not overlap.
func Overlaps(a, b Range) bool {
	return a.Start < b.End && b.Start < a.End
}

// Request is the candidate reservation to evaluate.
type Request struct {
	// Duration in hours, 1-24. A duration of 24 occupies the entire day.
	Duration int
	// TimeSlot is either a parseable range or the "Full Day" sentinel.
	TimeSlot string
}

// FullDay reports whether the request occupies the entire day.
func (r Request) FullDay() bool {
	return r.Duration == constant.FullDayDuration || r.TimeSlot == constant.TimeSlotFullDay
}

// Booked is an existing reservation on the same field and date.
type Booked struct {
	TimeSlot string
}

// Result is the evaluation verdict.
type Result struct {
	Available bool
	// ConflictsWith holds the booked slot that blocked the request, if any.
	ConflictsWith string
	// Skipped lists booked slot strings that could not be parsed. They never
	// block a request; callers should log them.
	Skipped []string
}

// Evaluate decides whether the candidate fits among the existing bookings for
// its field and date.
//
// A full-day candidate conflicts if any booking row exists at all. Otherwise a
// full-day row blocks every candidate, and a regular row blocks the candidate
// exactly when the two ranges overlap. Rows whose slot cannot be parsed are
// skipped rather than failing the whole evaluation; callers log them.
func Evaluate(req Request, existing []Booked) Result {
	if req.FullDay() {
		if len(existing) > 0 {
			return Result{Available: false, ConflictsWith: existing[0].TimeSlot}
		}

		return Result{Available: true}
	}

	candidate, candidateErr := ParseRange(req.TimeSlot)

	res := Result{Available: true}

	for _, booked := range existing {
		if booked.TimeSlot == constant.TimeSlotFullDay {
			return Result{Available: false, ConflictsWith: booked.TimeSlot, Skipped: res.Skipped}
		}

		if candidateErr != nil {
			continue
		}

		bookedRange, err := ParseRange(booked.TimeSlot)
		if err != nil {
			res.Skipped = append(res.Skipped, booked.TimeSlot)

			continue
		}

		if Overlaps(candidate, bookedRange) {
			return Result{Available: false, ConflictsWith: booked.TimeSlot, Skipped: res.Skipped}
		}
	}

	return res
}
