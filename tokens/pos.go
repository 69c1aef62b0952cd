package tokens

import "fmt"

// Pos is a zero-based location in the input.
type Pos struct {
	Column int
	Row    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Column)
}
