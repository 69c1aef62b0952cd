package tokens

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"math"
	"strconv"

	"github.com/reusee/mulscan/logs"
)

type Options struct {
	// Name identifies the input in errors
	Name string

	// DigitRuns coalesces consecutive digits into one Number.
	// When false every digit is a Number of its own.
	DigitRuns bool

	// if not nil, every token is logged at debug level
	Logger logs.Logger
}

// Tokenizer splits a byte stream into tokens, separating the bytes between them as skipped text.
// It reads single bytes; no UTF-8 decoding is done.
type Tokenizer struct {
	source  *bufio.Reader
	options Options

	// buffered bytes of source, consumed up to readPos
	window  []byte
	readPos int

	evaluating []byte
	holding    bool // evaluating is a complete Number waiting for more digits
	held       Token

	pos  Pos
	done bool
}

func NewTokenizer(source io.Reader, options Options) *Tokenizer {
	return &Tokenizer{
		source:  bufio.NewReader(source),
		options: options,
	}
}

func (t *Tokenizer) fill() error {
	if t.readPos < len(t.window) {
		return nil
	}
	if len(t.window) > 0 {
		if _, err := t.source.Discard(len(t.window)); err != nil {
			return err
		}
	}
	t.window = nil
	t.readPos = 0
	if _, err := t.source.Peek(1); err != nil {
		return err
	}
	t.window, _ = t.source.Peek(t.source.Buffered())
	return nil
}

// Next returns the next token, or io.EOF when the input is exhausted.
// Bytes left unmatched at the end of input are dropped.
// A read failure is returned as *SourceError, and io.EOF after that.
func (t *Tokenizer) Next() (Result, error) {
	if t.done {
		return Result{}, io.EOF
	}

	for {
		if err := t.fill(); err != nil {
			t.done = true
			if err == io.EOF {
				if t.holding {
					return t.emit(t.held), nil
				}
				return Result{}, io.EOF
			}
			return Result{}, &SourceError{
				Err:  err,
				Name: t.options.Name,
				Pos:  t.pos,
			}
		}

		for t.readPos < len(t.window) {
			c := t.window[t.readPos]

			if t.holding {
				if c >= '0' && c <= '9' {
					value := uint64(t.held.Value)*10 + uint64(c-'0')
					if value <= math.MaxUint32 {
						t.readPos++
						t.evaluating = append(t.evaluating, c)
						t.held = Number(uint32(value))
						continue
					}
				}
				// c starts the next token
				return t.emit(t.held), nil
			}

			t.readPos++
			t.evaluating = append(t.evaluating, c)
			token, ok := classify(t.evaluating)
			if !ok {
				continue
			}
			if token.Kind == KindNumber && t.options.DigitRuns {
				t.holding = true
				t.held = token
				continue
			}
			return t.emit(token), nil
		}
	}
}

func (t *Tokenizer) emit(token Token) Result {
	evalLen := len(t.evaluating)
	split := evalLen - token.Len()

	ret := Result{
		Token: token,
		Pos: Pos{
			Column: t.pos.Column + split,
			Row:    t.pos.Row,
		},
		Skipped:    string(t.evaluating[:split]),
		SkippedPos: t.pos,
	}

	if token.Kind == KindLineBreak {
		t.pos = Pos{
			Row: t.pos.Row + 1,
		}
	} else {
		t.pos.Column += evalLen
	}
	t.evaluating = t.evaluating[:0]
	t.holding = false

	if t.options.Logger != nil {
		t.options.Logger.Debug("found token",
			"token", token,
			"pos", ret.Pos,
			"skipped", ret.Skipped,
			"skipped_pos", ret.SkippedPos,
		)
	}

	return ret
}

func (t *Tokenizer) All() iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		for {
			res, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(res, err) {
				return
			}
		}
	}
}

var mulKeyword = []byte("mul")

func classify(evaluating []byte) (Token, bool) {
	if len(evaluating) == 0 {
		return Token{}, false
	}

	switch evaluating[len(evaluating)-1] {
	case ',':
		return Token{Kind: KindComma}, true
	case '\n':
		return Token{Kind: KindLineBreak}, true
	case '(':
		return Token{Kind: KindLParen}, true
	case ')':
		return Token{Kind: KindRParen}, true
	}

	if bytes.HasSuffix(evaluating, mulKeyword) {
		return Token{Kind: KindMul}, true
	}

	if n, ok := parseNumber(evaluating); ok {
		return Number(n), true
	}

	return Token{}, false
}

// parseNumber accepts an optional leading '+' followed by decimal digits that fit in 32 bits.
func parseNumber(bs []byte) (uint32, bool) {
	if len(bs) > 1 && bs[0] == '+' {
		bs = bs[1:]
	}
	if len(bs) == 0 {
		return 0, false
	}
	for _, c := range bs {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(string(bs), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
