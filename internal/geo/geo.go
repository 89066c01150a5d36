// Package geo contains pure geodesy helpers shared by the directory browser
// and the map viewport math. It has no dependency on delivery or persistence.
package geo

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// ParsePoint parses string latitude/longitude into an orb.Point.
// Entities carry coordinates as free-text strings; a point is valid only when
// both values parse to finite numbers. Anything else is reported as not
// mappable, never as an error.
func ParsePoint(latitude, longitude string) (orb.Point, bool) {
	lat, ok := parseFinite(latitude)
	if !ok {
		return orb.Point{}, false
	}
	lng, ok := parseFinite(longitude)
	if !ok {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// Haversine returns the great-circle distance between two points in meters.
func Haversine(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b)
}

// Bounds accumulates a bounding box covering all given points.
// Returns false when the slice is empty.
func Bounds(points []orb.Point) (orb.Bound, bool) {
	if len(points) == 0 {
		return orb.Bound{}, false
	}

	bound := orb.MultiPoint(points).Bound()

	return bound, true
}

// Center returns the midpoint of a bounding box.
func Center(bound orb.Bound) orb.Point {
	return bound.Center()
}
