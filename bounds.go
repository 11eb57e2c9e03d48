package rangemap

import (
	"cmp"
	"math"
)

// Bounds supplies the sentinel values that bracket a domain: Min is at or
// below every valid query point and Max is at or above every valid one.
// The sweep uses them to close the breakpoint table on both ends so that
// any finite point falls inside some window.
type Bounds[T cmp.Ordered] interface {
	Min() T
	Max() T
}

// IntBounds bounds the int domain with math.MinInt / math.MaxInt.
type IntBounds struct{}

func (IntBounds) Min() int { return math.MinInt }
func (IntBounds) Max() int { return math.MaxInt }

// Int64Bounds bounds the int64 domain.
type Int64Bounds struct{}

func (Int64Bounds) Min() int64 { return math.MinInt64 }
func (Int64Bounds) Max() int64 { return math.MaxInt64 }

// Uint64Bounds bounds the uint64 domain.
type Uint64Bounds struct{}

func (Uint64Bounds) Min() uint64 { return 0 }
func (Uint64Bounds) Max() uint64 { return math.MaxUint64 }

// Float64Bounds bounds the float64 domain with the infinities, so finite
// breakpoints never collide with a sentinel.
type Float64Bounds struct{}

func (Float64Bounds) Min() float64 { return math.Inf(-1) }
func (Float64Bounds) Max() float64 { return math.Inf(1) }

// MinMax bounds a custom ordered domain with explicit sentinels.
// Lo must compare at or below, and Hi at or above, every value the caller
// will ever Build with or Query for.
type MinMax[T cmp.Ordered] struct {
	Lo, Hi T
}

func (b MinMax[T]) Min() T { return b.Lo }
func (b MinMax[T]) Max() T { return b.Hi }
