package debugs

import (
	"errors"
	"testing"

	"github.com/reusee/mulscan/evals"
	"github.com/reusee/mulscan/instrs"
	"github.com/reusee/mulscan/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	ptrStruct := &testStruct{
		Exported:   "hello",
		unexported: 42,
	}

	dict := func(kvs ...any) starlark.Value {
		d := starlark.NewDict(len(kvs) / 2)
		for i := 0; i < len(kvs); i += 2 {
			d.SetKey(kvs[i].(starlark.Value), kvs[i+1].(starlark.Value))
		}
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "mul(1,2)", starlark.String("mul(1,2)")},
		{"int", int(42), starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint32", uint32(42), starlark.MakeUint(42)},
		{"uint64", uint64(18446744065119617025), starlark.MakeUint64(18446744065119617025)},
		{"float64", float64(3.14), starlark.Float(3.14)},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"starlark value", starlark.MakeInt(7), starlark.MakeInt(7)},
		{"[]any", []any{1, "a", true}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a"), starlark.True})},
		{"[]string", []string{"a", "b"}, starlark.NewList([]starlark.Value{starlark.String("a"), starlark.String("b")})},
		{"map[string]any", map[string]any{"a": 1}, dict(starlark.String("a"), starlark.MakeInt(1))},
		{"map[int]bool", map[int]bool{1: true}, dict(starlark.MakeInt(1), starlark.True)},
		{"struct", testStruct{Exported: "hello", unexported: 42}, dict(starlark.String("Exported"), starlark.String("hello"))},
		{"pointer to struct", ptrStruct, dict(starlark.String("Exported"), starlark.String("hello"))},
		{"pointer to pointer to struct", &ptrStruct, dict(starlark.String("Exported"), starlark.String("hello"))},
		{"report", evals.Report{Total: 20, Instructions: 1, Skipped: 1}, dict(
			starlark.String("Total"), starlark.MakeInt(20),
			starlark.String("Instructions"), starlark.MakeInt(1),
			starlark.String("Skipped"), starlark.MakeInt(1),
		)},
		{"instruction", instrs.Instruction(instrs.Multiplication{A: 4, B: 5, Pos: tokens.Pos{Column: 1}}), dict(
			starlark.String("A"), starlark.MakeInt(4),
			starlark.String("B"), starlark.MakeInt(5),
			starlark.String("Pos"), dict(
				starlark.String("Column"), starlark.MakeInt(1),
				starlark.String("Row"), starlark.MakeInt(0),
			),
		)},
		{"nil pointer", (*testStruct)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("func", func(t *testing.T) {
		v := toStarlarkValue(func(s string) int {
			return len(s)
		})
		if _, ok := v.(starlark.Callable); !ok {
			t.Fatalf("got %T", v)
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestGlobals(t *testing.T) {
	globals := Globals(map[string]any{
		"reports": []evals.Report{
			{Total: 20, Instructions: 1},
			{Total: 2, Instructions: 1, Skipped: 1},
		},
	})
	thread := &starlark.Thread{Name: "test"}
	out, err := starlark.ExecFileOptions(&syntax.FileOptions{
		TopLevelControl: true,
		GlobalReassign:  true,
	}, thread, "test.star", `
total = 0
for r in reports:
    total += r["Total"]
`, globals)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := starlark.Equal(out["total"], starlark.MakeInt(22))
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Fatalf("got %v", out["total"])
	}
}
