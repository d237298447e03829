package fix32

// AngleScale is the scale of angles returned by Atan2: radians * 2^28.
const AngleScale = 28

const (
	// PiHalf is pi/2 at scale 2^AngleScale.
	PiHalf int32 = 0x1921FB54
	// Pi is pi at scale 2^AngleScale.
	Pi int32 = 0x3243F6A9

	// DenominatorWeight is 0.28125 at scale 2^32, the weight of the smaller
	// squared coordinate in the atan2 denominator.
	DenominatorWeight int32 = 0x48000000
)

// octant numbers the eight regions of the plane counter-clockwise from the
// positive x axis for the upper half (0-3) and clockwise for the lower
// half (7-4), so that mirroring across an axis is a subtraction.
type octant int

func classify(x, y int32) octant {
	absX, absY := x, y
	if absX < 0 {
		absX = -absX
	}
	if absY < 0 {
		absY = -absY
	}

	o := octant(1)
	if absX > absY {
		o = 0
	}
	if x < 0 {
		o = 3 - o
	}
	if y < 0 {
		o = 7 - o
	}
	return o
}

// xDominant reports whether |x| > |y| in the octant.
func (o octant) xDominant() bool {
	switch o {
	case 7, 0, 3, 4:
		return true
	default:
		return false
	}
}

// Atan2 approximates the angle of the vector (x, y), i.e. the arc tangent
// of y/x in the range [-pi, pi], returned in radians at scale 2^28.
// The arguments follow math.Atan2: y first, then x. Both share scale.
//
// Within an octant the angle is approximated by t/(1 + 0.28125 t^2) with
// t = min(|x|,|y|)/max(|x|,|y|) and completed with a multiple of pi/2.
// The absolute error stays below 0.0051 rad once max(|x|, |y|) >= 2^24 in
// raw units; smaller raw magnitudes lose precision in the squared terms,
// whatever the scale. The result is undefined for x == y == 0.
func Atan2(y, x int32, scale int) int32 {
	o := classify(x, y)

	// Products and squares at 2^(2*scale - 32).
	xy := Mul(x, y, 32)
	sqX := Mul(x, x, 32)
	sqY := Mul(y, y, 32)
	sqScale := 2*scale - 32

	var denom int32
	if o.xDominant() {
		denom = sqX + Mul(sqY, DenominatorWeight, 32)
	} else {
		denom = sqY + Mul(sqX, DenominatorWeight, 32)
	}

	// 1/denom as the square of 1/sqrt(denom).
	invSqrt, denScale := InvSqrt(uint32(denom), sqScale)
	inv := Mul(int32(invSqrt), int32(invSqrt), 32) // at 2^(2*denScale - 32)

	shift := sqScale + (2*denScale - 32) - AngleScale
	t := Mul(xy, inv, shift)

	switch o {
	case 1, 2:
		return PiHalf - t
	case 3:
		return Pi + t
	case 4:
		return -Pi + t
	case 5, 6:
		return -PiHalf - t
	default: // 7, 0
		return t
	}
}
