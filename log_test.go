package dynsql

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	foo := T("foo")
	id := Col("id", foo, TypeInteger)

	if _, err := Select(foo).Where(C(id, EQ, 1)).Render(Positional()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "rendered statement") || !strings.Contains(out, "operation=SELECT") {
		t.Errorf("Expected a debug record for the render, got %q", out)
	}

	buf.Reset()
	constant := Strategy{
		Name:   func(int) string { return "p" },
		Format: func(Binding) string { return "?" },
	}
	if _, err := Select(foo).Where(In(id, 1, 2)).Render(constant); !errors.Is(err, ErrDuplicateBindName) {
		t.Fatalf("Expected duplicate bind name error, got %v", err)
	}
	if !strings.Contains(buf.String(), "render failed") {
		t.Errorf("Expected a debug record for the failure, got %q", buf.String())
	}
}

func TestSetLogger_NilRestoresDefault(t *testing.T) {
	SetLogger(nil)
	if log() == nil {
		t.Fatal("Expected a default logger")
	}
	if log().Enabled(t.Context(), slog.LevelError) {
		t.Error("Expected the default logger to discard records")
	}
}
