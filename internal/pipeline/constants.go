package pipeline

// Pipeline construction sizes.
const (
	defaultStageCapacity  = 8 // Initial capacity for stages slice
	defaultOutputCapacity = 4 // Initial capacity for collected outputs
)

// partNameFormat names the sequences a split or interpolation stores:
// "<into>.<index>".
const partNameFormat = "%s.%d"

// defaultCurve is the interpolation exponent used unless Params.HasCurve is set.
const defaultCurve = 1.0
