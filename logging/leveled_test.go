package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dlshle/functional/errors"
)

func TestLevelLogger(t *testing.T) {
	t.Run("should drop entries below the water mark", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLevelLogger(&buf, "[test]", INFO)
		l.Debug(context.Background(), "hidden")
		l.Infof(context.Background(), "shown %d", 1)
		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Fatalf("debug entry should be filtered: %s", out)
		}
		if !strings.Contains(out, "[INFO] [test]") || !strings.Contains(out, "shown 1") {
			t.Fatalf("unexpected output: %s", out)
		}
	})
	t.Run("should propagate water mark to sub loggers", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLevelLogger(&buf, "root", INFO)
		sub := l.WithPrefix("sub")
		l.WaterMarkWithPropogate(TRACE)
		sub.Trace(context.Background(), "trace from sub")
		if !strings.Contains(buf.String(), "trace from sub") {
			t.Fatalf("sub logger did not pick up the new water mark: %s", buf.String())
		}
	})
	t.Run("should merge ctx values and goroutine id", func(t *testing.T) {
		var buf bytes.Buffer
		l := CreateLevelLogger(NewlineSeparatedJSONWriter(&buf), "json", LogAllWaterMark)
		l.SetContext("component", "test")
		ctx := WrapCtx(context.Background(), "op", "throttle")
		l.Warn(ctx, "hello ", "world")
		var entity map[string]any
		if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entity); err != nil {
			t.Fatalf("output is not json: %v (%s)", err, buf.String())
		}
		if entity["message"] != "hello world" || entity["level"] != "WARN" {
			t.Fatalf("unexpected entity %v", entity)
		}
		logCtx := entity["context"].(map[string]any)
		if logCtx["op"] != "throttle" || logCtx["component"] != "test" {
			t.Fatalf("context not merged: %v", logCtx)
		}
		if _, ok := logCtx[GoroutineContextKey]; !ok {
			t.Fatalf("goroutine id missing from %v", logCtx)
		}
	})
	t.Run("should render trackable errors with their stack", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLevelLogger(&buf, "err", LogAllWaterMark)
		l.TrackableError(context.Background(), errors.ContractViolation("bad input"), "invoke failed")
		if !strings.Contains(buf.String(), "stacktrace:") {
			t.Fatalf("stack trace missing: %s", buf.String())
		}
	})
	t.Run("noop writer should swallow everything", func(t *testing.T) {
		l := CreateLevelLogger(NewNoopWriter(), "noop", LogAllWaterMark)
		l.Fatal(context.Background(), "nothing")
	})
}

func TestBadgerLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLevelLogger(&buf, "store", DEBUG)
	bl := BadgerLogger(l)
	bl.Infof("Replaying file id: %d\n", 3)
	bl.Debugf("too noisy")
	bl.Warningf("value log %s", "full")
	out := buf.String()
	if !strings.Contains(out, "[DEBUG] [badger]") || !strings.Contains(out, "Replaying file id: 3") {
		t.Fatalf("info should be demoted to debug: %s", out)
	}
	if strings.Contains(out, "too noisy") {
		t.Fatalf("debug should be demoted below the water mark: %s", out)
	}
	if !strings.Contains(out, "[WARN] [badger]") {
		t.Fatalf("warning missing: %s", out)
	}
}

func TestLibraryLogger(t *testing.T) {
	var buf bytes.Buffer
	previous := GlobalLogger
	global := NewLevelLogger(&buf, "", DEBUG)
	global.SetContext("app", "demo")
	SetLogger(global)
	defer SetLogger(previous)

	l := LibraryLogger("[lib]")
	l.Trace(context.Background(), "hidden")
	l.Debug(WrapCtx(context.Background(), "zone", "eu"), "shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("global water mark not applied: %s", out)
	}
	if !strings.Contains(out, "[DEBUG] [lib]") || !strings.Contains(out, "{app:demo;zone:eu}") {
		t.Fatalf("unexpected output: %s", out)
	}
	if len(global.(*LevelLogger).subLoggers) != 0 {
		t.Fatal("library loggers must not register on the global logger")
	}
}
