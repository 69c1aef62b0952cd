package logs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapSpan(t *testing.T) {
	errFoo := errors.New("foo")

	err := WrapSpan(context.Background(), errFoo)
	if err != errFoo {
		t.Fatalf("got %v", err)
	}

	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err = WrapSpan(ctx, errFoo)
	if !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: abc") {
		t.Fatalf("got %v", err)
	}

	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
