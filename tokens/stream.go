package tokens

import "io"

// Stream yields tokenizer results until io.EOF.
type Stream interface {
	Next() (Result, error)
}

var _ Stream = new(Tokenizer)

var _ Stream = new(SliceStream)

type SliceStream struct {
	results []Result
	idx     int
}

func NewSliceStream(results []Result) *SliceStream {
	return &SliceStream{
		results: results,
	}
}

// Tokens builds a stream from bare tokens, laying them out back to back on one row.
func Tokens(toks ...Token) *SliceStream {
	results := make([]Result, 0, len(toks))
	var pos Pos
	for _, tok := range toks {
		results = append(results, Result{
			Token:      tok,
			Pos:        pos,
			SkippedPos: pos,
		})
		if tok.Kind == KindLineBreak {
			pos = Pos{Row: pos.Row + 1}
		} else {
			pos.Column += tok.Len()
		}
	}
	return NewSliceStream(results)
}

func (s *SliceStream) Next() (Result, error) {
	if s.idx >= len(s.results) {
		return Result{}, io.EOF
	}
	ret := s.results[s.idx]
	s.idx++
	return ret, nil
}
