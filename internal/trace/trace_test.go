package trace_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"hif/internal/trace"
)

func TestRingTracerKeepsLastEvents(t *testing.T) {
	r := trace.NewRingTracer(3, trace.LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		trace.Point(r, trace.ScopeOp, name, "")
	}
	got := r.Snapshot()
	if len(got) != 3 {
		t.Fatalf("snapshot holds %d events, want 3", len(got))
	}
	want := []string{"c", "d", "e"}
	for i := range want {
		if got[i].Name != want[i] {
			t.Fatalf("event %d is %q, want %q", i, got[i].Name, want[i])
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].Seq <= got[i-1].Seq {
			t.Fatalf("sequence numbers must be monotonic: %d then %d", got[i-1].Seq, got[i].Seq)
		}
	}
}

func TestLevelFiltersNodeScope(t *testing.T) {
	r := trace.NewRingTracer(8, trace.LevelOp)
	trace.Point(r, trace.ScopeOp, "op-event", "")
	trace.Point(r, trace.ScopeNode, "node-event", "")
	got := r.Snapshot()
	if len(got) != 1 || got[0].Name != "op-event" {
		t.Fatalf("LevelOp must drop node-scope events, kept %v", got)
	}

	off := trace.NewRingTracer(8, trace.LevelOff)
	trace.Point(off, trace.ScopeOp, "x", "")
	if len(off.Snapshot()) != 0 {
		t.Fatalf("LevelOff must drop everything")
	}
	if off.Enabled() {
		t.Fatalf("LevelOff tracer reports enabled")
	}
}

func TestPointToleratesNilAndNopTracer(t *testing.T) {
	trace.Point(nil, trace.ScopeOp, "ignored", "")
	trace.Point(trace.Nop, trace.ScopeNode, "ignored", "")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]trace.Level{
		"off":   trace.LevelOff,
		"op":    trace.LevelOp,
		"debug": trace.LevelDebug,
		"DEBUG": trace.LevelDebug,
	} {
		got, err := trace.ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := trace.ParseLevel("verbose"); err == nil {
		t.Fatalf("unknown level must be an error")
	}
}

func TestDumpFormats(t *testing.T) {
	r := trace.NewRingTracer(4, trace.LevelDebug)
	trace.Point(r, trace.ScopeOp, "equals", "unequal")

	var text bytes.Buffer
	if err := r.Dump(&text, trace.FormatText); err != nil {
		t.Fatalf("text dump: %v", err)
	}
	if !strings.Contains(text.String(), "equals") || !strings.Contains(text.String(), "unequal") {
		t.Fatalf("text dump missing fields: %q", text.String())
	}

	var nd bytes.Buffer
	if err := r.Dump(&nd, trace.FormatNDJSON); err != nil {
		t.Fatalf("ndjson dump: %v", err)
	}
	var decoded struct {
		Kind  string `json:"kind"`
		Scope string `json:"scope"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(nd.Bytes()), &decoded); err != nil {
		t.Fatalf("ndjson line does not parse: %v", err)
	}
	if decoded.Kind != "point" || decoded.Scope != "op" || decoded.Name != "equals" {
		t.Fatalf("decoded %+v", decoded)
	}
}
