package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
)

func TestSkipMirror(t *testing.T) {
	if !skipMirror(logging.LevelDebug, "rows inserted") {
		t.Fatalf("expected per-batch debug log to be skipped")
	}
	if skipMirror(logging.LevelWarn, "rows inserted") {
		t.Fatalf("did not expect warnings to be skipped")
	}
	if skipMirror(logging.LevelDebug, "build phase finished") {
		t.Fatalf("did not expect other debug logs to be skipped")
	}
}

func TestRecordAttributes(t *testing.T) {
	attrs := recordAttributes([]any{"table", "events", "rows", 2, 7, "x", "run_id"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "table" || attrs[0].Value.AsString() != "events" {
		t.Fatalf("unexpected table attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "rows" || attrs[1].Value.AsInt64() != 2 {
		t.Fatalf("unexpected rows attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "arg_2" || attrs[2].Value.AsString() != "x" {
		t.Fatalf("unexpected positional attribute: %+v", attrs[2])
	}
	if attrs[3].Key != "run_id" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected run_id attribute: %+v", attrs[3])
	}
}

func TestLogValue_Maps(t *testing.T) {
	rows := logValue(map[string]int{"teams": 2, "events": 11})
	if rows.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", rows.Kind())
	}
	items := rows.AsMap()
	if len(items) != 2 || items[0].Key != "events" || items[0].Value.AsInt64() != 11 {
		t.Fatalf("expected sorted map items, got %+v", items)
	}

	if got := logValue(map[string]any{"lineups": true}).AsMap(); len(got) != 1 || got[0].Value.AsString() != "true" {
		t.Fatalf("unexpected any map: %+v", got)
	}
}

func TestLogValue_Scalars(t *testing.T) {
	if got := logValue(errors.New("boom")).AsString(); got != "boom" {
		t.Fatalf("unexpected error value: %q", got)
	}
	if got := logValue(1500 * time.Millisecond).AsString(); got != "1.5s" {
		t.Fatalf("unexpected duration value: %q", got)
	}
	var missing *int64
	if kind := logValue(missing).Kind(); kind != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil pointer, got %s", kind)
	}
	if got := logValue([]string{"events", "lineups"}).AsSlice(); len(got) != 2 {
		t.Fatalf("unexpected slice length: %d", len(got))
	}
	if got := logValue(struct{ N int }{3}).AsString(); got != "{3}" {
		t.Fatalf("unexpected fallback value: %q", got)
	}
}

func TestSeverityOf(t *testing.T) {
	cases := map[logging.Level]otellog.Severity{
		logging.LevelDebug: otellog.SeverityDebug,
		logging.LevelInfo:  otellog.SeverityInfo,
		logging.LevelWarn:  otellog.SeverityWarn,
		logging.LevelError: otellog.SeverityError,
	}
	for level, want := range cases {
		if got := severityOf(level); got != want {
			t.Fatalf("severityOf(%v): got=%v want=%v", level, got, want)
		}
	}
}
