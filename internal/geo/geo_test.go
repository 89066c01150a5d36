package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name      string
		latitude  string
		longitude string
		want      orb.Point
		ok        bool
	}{
		{name: "valid coordinates", latitude: "30.27", longitude: "-97.74", want: orb.Point{-97.74, 30.27}, ok: true},
		{name: "whitespace trimmed", latitude: " 25.03 ", longitude: "121.56", want: orb.Point{121.56, 25.03}, ok: true},
		{name: "zero is valid", latitude: "0", longitude: "0", want: orb.Point{0, 0}, ok: true},
		{name: "empty latitude", latitude: "", longitude: "-97.74", ok: false},
		{name: "empty longitude", latitude: "30.27", longitude: "", ok: false},
		{name: "non-numeric", latitude: "abc", longitude: "-97.74", ok: false},
		{name: "nan", latitude: "NaN", longitude: "-97.74", ok: false},
		{name: "infinity", latitude: "30.27", longitude: "+Inf", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePoint(tt.latitude, tt.longitude)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestHaversine(t *testing.T) {
	austin := orb.Point{-97.74, 30.27}
	dallas := orb.Point{-96.797, 32.7767}

	distance := Haversine(austin, dallas)

	// Roughly 293 km between the two city centers.
	assert.InDelta(t, 293000, distance, 5000)
}

func TestHaversine_SamePoint(t *testing.T) {
	p := orb.Point{121.5654, 25.0330}
	assert.Zero(t, Haversine(p, p))
}

func TestBounds(t *testing.T) {
	points := []orb.Point{
		{-97.74, 30.27},
		{-96.797, 32.7767},
		{-95.3698, 29.7604},
	}

	bound, ok := Bounds(points)
	require.True(t, ok)

	assert.Equal(t, -97.74, bound.Min[0])
	assert.Equal(t, 29.7604, bound.Min[1])
	assert.Equal(t, -95.3698, bound.Max[0])
	assert.Equal(t, 32.7767, bound.Max[1])
}

func TestBounds_Empty(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)
}

func TestBounds_SinglePoint(t *testing.T) {
	bound, ok := Bounds([]orb.Point{{-97.74, 30.27}})
	require.True(t, ok)
	assert.Equal(t, bound.Min, bound.Max)
	assert.Equal(t, orb.Point{-97.74, 30.27}, Center(bound))
}
