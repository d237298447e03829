// Package accuracy characterises the error of the fix32 approximations.
//
// Each sweep evaluates one operation over a deterministic input set,
// compares it with a float64 reference and summarises the error. The
// Atan2 sweep additionally decomposes the angle error over a full circle
// into harmonics; the octant symmetry of the approximation puts the
// dominant component at the 4th harmonic.
package accuracy
