package instrs

import (
	"errors"
)

var (
	// a keyword arrived while the previous instruction still lacks parameters
	ErrKeywordCollision = errors.New("instruction already found")

	// a Number arrived before any keyword
	ErrOrphanOperand = errors.New("valid instruction expected")

	// the input ended in the middle of an instruction
	ErrIncompleteInstruction = errors.New("incomplete trailing instruction")
)

// IsFatal reports whether err ends the scan.
// Only malformed instructions are recoverable; anything else, like a failed read, is fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrKeywordCollision) &&
		!errors.Is(err, ErrOrphanOperand) &&
		!errors.Is(err, ErrIncompleteInstruction)
}
