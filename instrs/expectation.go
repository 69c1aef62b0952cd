package instrs

import (
	"fmt"

	"github.com/reusee/mulscan/tokens"
)

// Expectation is the kind of instruction being assembled.
type Expectation uint8

const (
	ExpectNothing Expectation = iota
	ExpectMultiplication
)

func (e Expectation) String() string {
	switch e {
	case ExpectNothing:
		return "Nothing"
	case ExpectMultiplication:
		return "Multiplication"
	}
	return fmt.Sprintf("Expectation(%d)", e)
}

func expectationOf(token tokens.Token) (Expectation, bool) {
	switch token.Kind {
	case tokens.KindMul:
		return ExpectMultiplication, true
	}
	return ExpectNothing, false
}

// Arity is the number of Number parameters the instruction takes.
func (e Expectation) Arity() int {
	switch e {
	case ExpectMultiplication:
		return 2
	}
	return 0
}

func (e Expectation) Ready(params []uint32) bool {
	return e != ExpectNothing && len(params) == e.Arity()
}

func (e Expectation) Build(params []uint32, pos tokens.Pos) (Instruction, error) {
	switch e {
	case ExpectMultiplication:
		if len(params) != 2 {
			return nil, fmt.Errorf("%w: %v expects 2 parameters, got %d", ErrIncompleteInstruction, e, len(params))
		}
		return Multiplication{
			A:   params[0],
			B:   params[1],
			Pos: pos,
		}, nil
	}
	return nil, fmt.Errorf("no instruction for %v", e)
}
