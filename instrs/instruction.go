package instrs

import (
	"fmt"

	"github.com/reusee/mulscan/tokens"
)

type Instruction interface {
	Evaluate() uint64
	Position() tokens.Pos
}

type Multiplication struct {
	A, B uint32
	Pos  tokens.Pos // of the mul keyword
}

var _ Instruction = Multiplication{}

// Evaluate returns A*B. The product of two 32-bit operands always fits.
func (m Multiplication) Evaluate() uint64 {
	return uint64(m.A) * uint64(m.B)
}

func (m Multiplication) Position() tokens.Pos {
	return m.Pos
}

func (m Multiplication) String() string {
	return fmt.Sprintf("mul(%d,%d)", m.A, m.B)
}
