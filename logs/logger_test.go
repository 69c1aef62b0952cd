package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Warn("skipped", "input", "foo.txt")
		if !strings.Contains(buf.String(), "input=foo.txt") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestLoggerLevel(t *testing.T) {
	defer level.Set(level.Level())

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		level.Set(slog.LevelWarn)
		logger.Debug("found token")
		if strings.Contains(buf.String(), "found token") {
			t.Fatalf("got %s", buf.String())
		}

		level.Set(slog.LevelDebug)
		logger.Debug("found token")
		if !strings.Contains(buf.String(), "found token") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %s", got)
	}
	if got := toJournalKey("skipped_pos"); got != "SKIPPED_POS" {
		t.Fatalf("got %s", got)
	}
}

func TestTerminalJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(newTerminalHandler(buf, true))
	logger.Warn("scan failed", "input", "foo.txt")
	if !strings.Contains(buf.String(), `"input":"foo.txt"`) {
		t.Fatalf("got %s", buf.String())
	}
}
