package numseq

// Named wrappers around the dispatcher, one pure, reversed and in-place
// variant per operator.

// Add returns a new sequence holding s + x.
func (s *Sequence) Add(x Operand) (*Sequence, error) {
	return s.Apply(OpAdd, x)
}

// RAdd returns a new sequence holding x + s.
func (s *Sequence) RAdd(x Operand) (*Sequence, error) {
	return s.ApplyReversed(OpAdd, x)
}

// AddInPlace sets the current values to s + x and returns s.
func (s *Sequence) AddInPlace(x Operand) (*Sequence, error) {
	return s.ApplyInPlace(OpAdd, x)
}

// Sub returns a new sequence holding s - x.
func (s *Sequence) Sub(x Operand) (*Sequence, error) {
	return s.Apply(OpSub, x)
}

// RSub returns a new sequence holding x - s.
func (s *Sequence) RSub(x Operand) (*Sequence, error) {
	return s.ApplyReversed(OpSub, x)
}

// SubInPlace sets the current values to s - x and returns s.
func (s *Sequence) SubInPlace(x Operand) (*Sequence, error) {
	return s.ApplyInPlace(OpSub, x)
}

// Mul returns a new sequence holding s * x.
func (s *Sequence) Mul(x Operand) (*Sequence, error) {
	return s.Apply(OpMul, x)
}

// RMul returns a new sequence holding x * s.
func (s *Sequence) RMul(x Operand) (*Sequence, error) {
	return s.ApplyReversed(OpMul, x)
}

// MulInPlace sets the current values to s * x and returns s.
func (s *Sequence) MulInPlace(x Operand) (*Sequence, error) {
	return s.ApplyInPlace(OpMul, x)
}

// Div returns a new sequence holding s / x.
func (s *Sequence) Div(x Operand) (*Sequence, error) {
	return s.Apply(OpDiv, x)
}

// RDiv returns a new sequence holding x / s.
func (s *Sequence) RDiv(x Operand) (*Sequence, error) {
	return s.ApplyReversed(OpDiv, x)
}

// DivInPlace sets the current values to s / x and returns s.
func (s *Sequence) DivInPlace(x Operand) (*Sequence, error) {
	return s.ApplyInPlace(OpDiv, x)
}

// FloorDiv returns a new sequence holding floor(s / x).
func (s *Sequence) FloorDiv(x Operand) (*Sequence, error) {
	return s.Apply(OpFloorDiv, x)
}

// RFloorDiv returns a new sequence holding floor(x / s).
func (s *Sequence) RFloorDiv(x Operand) (*Sequence, error) {
	return s.ApplyReversed(OpFloorDiv, x)
}

// FloorDivInPlace sets the current values to floor(s / x) and returns s.
func (s *Sequence) FloorDivInPlace(x Operand) (*Sequence, error) {
	return s.ApplyInPlace(OpFloorDiv, x)
}

// Pow returns a new sequence holding s ^ x.
func (s *Sequence) Pow(x Operand) (*Sequence, error) {
	return s.Apply(OpPow, x)
}

// RPow returns a new sequence holding x ^ s.
func (s *Sequence) RPow(x Operand) (*Sequence, error) {
	return s.ApplyReversed(OpPow, x)
}

// PowInPlace sets the current values to s ^ x and returns s.
func (s *Sequence) PowInPlace(x Operand) (*Sequence, error) {
	return s.ApplyInPlace(OpPow, x)
}

// Mod returns a new sequence holding s mod x.
func (s *Sequence) Mod(x Operand) (*Sequence, error) {
	return s.Apply(OpMod, x)
}

// RMod returns a new sequence holding x mod s.
func (s *Sequence) RMod(x Operand) (*Sequence, error) {
	return s.ApplyReversed(OpMod, x)
}

// ModInPlace sets the current values to s mod x and returns s.
func (s *Sequence) ModInPlace(x Operand) (*Sequence, error) {
	return s.ApplyInPlace(OpMod, x)
}
