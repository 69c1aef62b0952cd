package tokens

import (
	"fmt"
)

// SourceError reports a failure reading the underlying input.
// Nothing after it can be tokenized.
type SourceError struct {
	Err  error
	Name string
	Pos  Pos
}

func (s *SourceError) Error() string {
	if s.Name == "" {
		return fmt.Sprintf("read source at %s: %v", s.Pos, s.Err)
	}
	return fmt.Sprintf("read %s at %s: %v", s.Name, s.Pos, s.Err)
}

func (s *SourceError) Unwrap() error {
	return s.Err
}

type PosError struct {
	Err  error
	Name string
	Pos  Pos
}

func (p *PosError) Error() string {
	if p.Name == "" {
		return fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos)
	}
	return fmt.Sprintf("%s at %s:%s", p.Err.Error(), p.Name, p.Pos)
}

func (p *PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, name string, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*PosError); ok {
		return err
	}
	return &PosError{
		Err:  err,
		Name: name,
		Pos:  pos,
	}
}
