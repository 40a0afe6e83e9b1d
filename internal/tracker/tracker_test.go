package tracker

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reader "meminfo/internal/memory"
)

func TestNewMemRange(t *testing.T) {
	assert.Equal(t, MemRange{Current: 0, Highest: 0, Units: "Unknown"}, NewMemRange())
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name  string
		start MemRange
		entry reader.Sample
		want  MemRange
	}{
		{
			name:  "first sample",
			start: NewMemRange(),
			entry: reader.Sample{Value: "3200", Unit: "kB"},
			want:  MemRange{Current: 3200, Highest: 3200, Units: "kB"},
		},
		{
			name:  "bump highest",
			start: MemRange{Current: 5, Highest: 6, Units: "kB"},
			entry: reader.Sample{Value: "12", Unit: "kB"},
			want:  MemRange{Current: 12, Highest: 12, Units: "kB"},
		},
		{
			name:  "no bump to highest",
			start: MemRange{Current: 5, Highest: 6, Units: "kB"},
			entry: reader.Sample{Value: "4", Unit: "kB"},
			want:  MemRange{Current: 4, Highest: 6, Units: "kB"},
		},
		{
			name:  "equal to highest",
			start: MemRange{Current: 5, Highest: 6, Units: "kB"},
			entry: reader.Sample{Value: "6", Unit: "kB"},
			want:  MemRange{Current: 6, Highest: 6, Units: "kB"},
		},
		{
			name:  "zero",
			start: MemRange{Current: 5, Highest: 6, Units: "kB"},
			entry: reader.Sample{Value: "0", Unit: "kB"},
			want:  MemRange{Current: 0, Highest: 6, Units: "kB"},
		},
		{
			name:  "unit change adopted without rescaling",
			start: MemRange{Current: 5, Highest: 6, Units: "kB"},
			entry: reader.Sample{Value: "1", Unit: "MB"},
			want:  MemRange{Current: 1, Highest: 6, Units: "MB"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := test.start
			require.NoError(t, r.Update(test.entry, true))
			assert.Equal(t, test.want, r)
			assert.GreaterOrEqual(t, r.Highest, r.Current)
		})
	}
}

func TestUpdateMissing(t *testing.T) {
	r := MemRange{Current: 5, Highest: 6, Units: "kB"}

	err := r.Update(reader.Sample{}, false)
	assert.ErrorIs(t, err, ErrCounterMissing)
	assert.Equal(t, MemRange{Current: 5, Highest: 6, Units: "kB"}, r)
}

func TestUpdateUnparseable(t *testing.T) {
	for _, raw := range []string{"abc", "", "1.5", "12kB", "99999999999999999999"} {
		t.Run(raw, func(t *testing.T) {
			r := MemRange{Current: 5, Highest: 6, Units: "kB"}

			err := r.Update(reader.Sample{Value: raw, Unit: "MB"}, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnparseable)
			assert.NotErrorIs(t, err, ErrCounterMissing)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, raw, perr.Raw)
			assert.Contains(t, err.Error(), strconv.Quote(raw))

			assert.Equal(t, MemRange{Current: 5, Highest: 6, Units: "kB"}, r)
		})
	}
}

func TestUpdateRepeatedSample(t *testing.T) {
	r := MemRange{Current: 1, Highest: 100, Units: "kB"}
	entry := reader.Sample{Value: "40", Unit: "kB"}

	require.NoError(t, r.Update(entry, true))
	first := r
	require.NoError(t, r.Update(entry, true))

	assert.Equal(t, first, r)
	assert.Equal(t, 40.0, r.Current)
	assert.Equal(t, 100.0, r.Highest)
}

func TestUpdateHighestNeverDecreases(t *testing.T) {
	r := NewMemRange()
	highest := r.Highest
	for _, v := range []int{10, 3, 0, 25, 25, 7, 1000, 999, 0} {
		require.NoError(t, r.Update(reader.Sample{Value: strconv.Itoa(v), Unit: "kB"}, true))

		assert.Equal(t, float64(v), r.Current)
		assert.Equal(t, max(highest, float64(v)), r.Highest)
		highest = r.Highest
	}
	assert.Equal(t, 1000.0, r.Highest)
}

func TestConvert(t *testing.T) {
	value, units, err := Convert(reader.Sample{Value: "3200", Unit: "kB"}, true)
	require.NoError(t, err)
	assert.Equal(t, 3200.0, value)
	assert.Equal(t, "kB", units)

	_, _, err = Convert(reader.Sample{}, false)
	assert.ErrorIs(t, err, ErrCounterMissing)
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.0, NewMemRange().Fraction())
	assert.Equal(t, 0.5, MemRange{Current: 3, Highest: 6}.Fraction())
	assert.Equal(t, 1.0, MemRange{Current: 6, Highest: 6}.Fraction())
}
