package tokens

import "fmt"

type Token struct {
	Kind  Kind
	Value uint32
}

type Kind uint8

const (
	KindInvalid Kind = iota
	KindMul
	KindNumber
	KindLParen
	KindRParen
	KindComma
	KindLineBreak
)

var kindNames = [...]string{
	KindInvalid:   "Invalid",
	KindMul:       "Mul",
	KindNumber:    "Number",
	KindLParen:    "LParen",
	KindRParen:    "RParen",
	KindComma:     "Comma",
	KindLineBreak: "LineBreak",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Len returns the number of input bytes the token itself occupies.
func (t Token) Len() int {
	switch t.Kind {
	case KindMul:
		return 3
	case KindNumber:
		n := t.Value
		l := 1
		for n >= 10 {
			n /= 10
			l++
		}
		return l
	case KindLParen, KindRParen, KindComma, KindLineBreak:
		return 1
	}
	return 0
}

func (t Token) String() string {
	if t.Kind == KindNumber {
		return fmt.Sprintf("Number(%d)", t.Value)
	}
	return t.Kind.String()
}

func Number(n uint32) Token {
	return Token{
		Kind:  KindNumber,
		Value: n,
	}
}
