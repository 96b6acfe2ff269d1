package numseq

// Broadcast fill values
const (
	fillAdditive       = 0.0 // identity of add and subtract
	fillMultiplicative = 1.0 // identity of multiply, divide, power and modulo
)

// Inversion and scaling
const (
	pivotDivisor = 2.0 // midpoint = (min + max) / 2
	pivotFactor  = 2.0 // v' = 2*pivot - v
)

// Rounding
const (
	decimalBase = 10.0

	// float64 carries at most 17 significant decimal digits, so rounding to
	// more places is the identity.
	maxRoundDecimals = 17
)

// Allocation
const (
	maxLength = 1 << 30 // largest sequence any operation will build
)

// Parity tests on values
const (
	parityModulus = 2.0
	oddRemainder  = 1.0
)

// Interpolation
const (
	defaultCurve  = 1.0
	spanMinPoints = 2 // floats.Span needs at least two points
)

// Sampling
const (
	minFoldWindow = 2 // a fold walk needs two distinct endpoints to turn around
)
