package instrs

import (
	"fmt"
	"io"
	"iter"

	"github.com/reusee/mulscan/logs"
	"github.com/reusee/mulscan/tokens"
)

type Options struct {
	// Name identifies the input in errors
	Name string

	// if not nil, skipped text and dropped attempts are logged at debug level
	Logger logs.Logger
}

// Interpreter assembles instructions from a token stream.
// A keyword starts an instruction, the following Number tokens are its parameters,
// and every other token is ignored.
type Interpreter struct {
	stream  tokens.Stream
	options Options

	// a keyword that ended the previous attempt and opens the next one
	pending *tokens.Result
}

func NewInterpreter(stream tokens.Stream, options Options) *Interpreter {
	return &Interpreter{
		stream:  stream,
		options: options,
	}
}

func (i *Interpreter) pull() (tokens.Result, error) {
	if i.pending != nil {
		res := *i.pending
		i.pending = nil
		return res, nil
	}
	res, err := i.stream.Next()
	if err != nil {
		return res, err
	}
	if res.Skipped != "" && i.options.Logger != nil {
		i.options.Logger.Debug("skipped",
			"text", res.Skipped,
			"pos", res.SkippedPos,
		)
	}
	return res, nil
}

// Next returns the next instruction, or io.EOF when the stream is exhausted.
// Errors wrapping ErrKeywordCollision, ErrOrphanOperand or ErrIncompleteInstruction
// abandon the current attempt only, and Next can be called again.
// Errors from the stream are returned as is.
func (i *Interpreter) Next() (Instruction, error) {
	var (
		expect    Expectation
		expectPos tokens.Pos
		params    []uint32
	)

	for {
		res, err := i.pull()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if e, ok := expectationOf(res.Token); ok {
			if expect != ExpectNothing {
				i.pending = &res
				return nil, i.fail(
					fmt.Errorf("%w: got %v and then %v", ErrKeywordCollision, expect, res.Token),
					expectPos,
				)
			}
			expect = e
			expectPos = res.Pos
			continue
		}

		if res.Token.Kind != tokens.KindNumber {
			// punctuation is not validated
			continue
		}

		if expect == ExpectNothing {
			return nil, i.fail(
				fmt.Errorf("%w: got %v", ErrOrphanOperand, res.Token),
				res.Pos,
			)
		}

		params = append(params, res.Token.Value)
		if expect.Ready(params) {
			return expect.Build(params, expectPos)
		}
	}

	if expect != ExpectNothing {
		return nil, i.fail(
			fmt.Errorf("%w: %v with %d of %d parameters", ErrIncompleteInstruction, expect, len(params), expect.Arity()),
			expectPos,
		)
	}

	return nil, io.EOF
}

func (i *Interpreter) fail(err error, pos tokens.Pos) error {
	err = tokens.WithPos(err, i.options.Name, pos)
	if i.options.Logger != nil {
		i.options.Logger.Debug("drop instruction",
			"error", err,
		)
	}
	return err
}

func (i *Interpreter) All() iter.Seq2[Instruction, error] {
	return func(yield func(Instruction, error) bool) {
		for {
			instr, err := i.Next()
			if err == io.EOF {
				return
			}
			if !yield(instr, err) {
				return
			}
		}
	}
}
