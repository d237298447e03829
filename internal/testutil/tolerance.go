// Package testutil holds shared tolerance helpers for tests.
package testutil

import (
	"math"
	"testing"
)

// RelErr returns |got - want| / |want|, or |got| when want is zero.
func RelErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

// RequireRelNear fails t if got differs from want by more than rel
// (relative tolerance).
func RequireRelNear(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if e := RelErr(got, want); e > rel || math.IsNaN(e) {
		t.Fatalf("%s: got %v, want %v (rel err %.3g > %.3g)", name, got, want, e, rel)
	}
}

// RequireNear fails t if got and want differ by more than eps (absolute
// tolerance).
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if d := math.Abs(got - want); d > eps || math.IsNaN(d) {
		t.Fatalf("%s: got %v, want %v (diff %.3g > eps %.3g)", name, got, want, d, eps)
	}
}

// AngleDiff returns the difference a - b wrapped into [-pi, pi].
func AngleDiff(a, b float64) float64 {
	return math.Remainder(a-b, 2*math.Pi)
}
