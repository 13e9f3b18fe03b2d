package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	t.Run("success: parses morning range", func(t *testing.T) {
		r, err := ParseRange("10:00 AM - 12:00 PM")

		assert.NoError(t, err)
		assert.Equal(t, Range{Start: 10 * 60, End: 12 * 60}, r)
	})

	t.Run("success: parses afternoon range", func(t *testing.T) {
		r, err := ParseRange("12:00 PM - 02:30 PM")

		assert.NoError(t, err)
		assert.Equal(t, Range{Start: 12 * 60, End: 14*60 + 30}, r)
	})

	t.Run("success: midnight is zero minutes", func(t *testing.T) {
		r, err := ParseRange("12:00 AM - 01:00 AM")

		assert.NoError(t, err)
		assert.Equal(t, Range{Start: 0, End: 60}, r)
	})

	t.Run("error: missing separator", func(t *testing.T) {
		_, err := ParseRange("10:00 AM 12:00 PM")

		assert.ErrorIs(t, err, ErrMalformedSlot)
	})

	t.Run("error: unparseable time", func(t *testing.T) {
		_, err := ParseRange("25:00 AM - 12:00 PM")

		assert.ErrorIs(t, err, ErrMalformedSlot)
	})

	t.Run("error: full day sentinel is not a range", func(t *testing.T) {
		_, err := ParseRange("Full Day")

		assert.ErrorIs(t, err, ErrMalformedSlot)
	})
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Range
		b    Range
		want bool
	}{
		{"disjoint", Range{600, 720}, Range{780, 840}, false},
		{"touching endpoints do not overlap", Range{600, 720}, Range{720, 840}, false},
		{"touching endpoints reversed", Range{720, 840}, Range{600, 720}, false},
		{"partial overlap", Range{600, 720}, Range{660, 780}, true},
		{"contained", Range{600, 720}, Range{630, 690}, true},
		{"identical", Range{600, 720}, Range{600, 720}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestEvaluate(t *testing.T) {
	booked := []Booked{{TimeSlot: "10:00 AM - 12:00 PM"}}

	t.Run("available: touching boundary", func(t *testing.T) {
		res := Evaluate(Request{Duration: 2, TimeSlot: "12:00 PM - 02:00 PM"}, booked)

		assert.True(t, res.Available)
		assert.Empty(t, res.ConflictsWith)
	})

	t.Run("conflict: overlapping interval", func(t *testing.T) {
		res := Evaluate(Request{Duration: 2, TimeSlot: "11:00 AM - 01:00 PM"}, booked)

		assert.False(t, res.Available)
		assert.Equal(t, "10:00 AM - 12:00 PM", res.ConflictsWith)
	})

	t.Run("available: no existing bookings", func(t *testing.T) {
		res := Evaluate(Request{Duration: 2, TimeSlot: "10:00 AM - 12:00 PM"}, nil)

		assert.True(t, res.Available)
	})

	t.Run("conflict: existing full day blocks everything", func(t *testing.T) {
		res := Evaluate(
			Request{Duration: 1, TimeSlot: "09:00 AM - 10:00 AM"},
			[]Booked{{TimeSlot: "Full Day"}},
		)

		assert.False(t, res.Available)
		assert.Equal(t, "Full Day", res.ConflictsWith)
	})

	t.Run("conflict: full day candidate against any row", func(t *testing.T) {
		res := Evaluate(Request{Duration: 24, TimeSlot: "Full Day"}, booked)

		assert.False(t, res.Available)
	})

	t.Run("conflict: full day candidate against another full day", func(t *testing.T) {
		res := Evaluate(
			Request{Duration: 24, TimeSlot: "Full Day"},
			[]Booked{{TimeSlot: "Full Day"}},
		)

		assert.False(t, res.Available)
	})

	t.Run("available: full day candidate with empty day", func(t *testing.T) {
		res := Evaluate(Request{Duration: 24, TimeSlot: "Full Day"}, nil)

		assert.True(t, res.Available)
	})

	t.Run("full day by duration alone", func(t *testing.T) {
		res := Evaluate(Request{Duration: 24, TimeSlot: "10:00 AM - 12:00 PM"}, booked)

		assert.False(t, res.Available)
	})

	t.Run("available: malformed existing row is skipped", func(t *testing.T) {
		res := Evaluate(
			Request{Duration: 2, TimeSlot: "10:00 AM - 12:00 PM"},
			[]Booked{{TimeSlot: "whenever"}},
		)

		assert.True(t, res.Available)
		assert.Equal(t, []string{"whenever"}, res.Skipped)
	})

	t.Run("malformed row does not change the verdict for valid rows", func(t *testing.T) {
		mixed := []Booked{{TimeSlot: "whenever"}, {TimeSlot: "10:00 AM - 12:00 PM"}}

		conflicting := Evaluate(Request{Duration: 2, TimeSlot: "11:00 AM - 01:00 PM"}, mixed)
		assert.False(t, conflicting.Available)

		clear := Evaluate(Request{Duration: 2, TimeSlot: "12:00 PM - 02:00 PM"}, mixed)
		assert.True(t, clear.Available)
	})

	t.Run("idempotent: same inputs give the same verdict", func(t *testing.T) {
		req := Request{Duration: 2, TimeSlot: "11:00 AM - 01:00 PM"}

		first := Evaluate(req, booked)
		second := Evaluate(req, booked)

		assert.Equal(t, first, second)
	})
}
