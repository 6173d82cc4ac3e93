package observability

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	otelglobal "go.opentelemetry.io/otel/log/global"
)

const logMirrorScope = "football-warehouse/internal/platform/logging"

// Per-batch debug messages stay in the local log only.
var unmirroredMessages = map[string]struct{}{
	"rows inserted":        {},
	"parquet file written": {},
}

// logMirror forwards logger records to the global OpenTelemetry log provider.
type logMirror struct {
	otel otellog.Logger
}

func newLogMirror(serviceVersion string) *logMirror {
	return &logMirror{
		otel: otelglobal.Logger(logMirrorScope, otellog.WithInstrumentationVersion(serviceVersion)),
	}
}

func (m *logMirror) emit(ctx context.Context, level logging.Level, msg string, args ...any) {
	if skipMirror(level, msg) {
		return
	}
	severity := severityOf(level)
	if !m.otel.Enabled(ctx, otellog.EnabledParameters{Severity: severity, EventName: msg}) {
		return
	}

	now := time.Now().UTC()
	var record otellog.Record
	record.SetTimestamp(now)
	record.SetObservedTimestamp(now)
	record.SetSeverity(severity)
	record.SetSeverityText(strings.ToUpper(level.String()))
	record.SetEventName(msg)
	record.SetBody(otellog.StringValue(msg))
	record.AddAttributes(recordAttributes(args)...)
	m.otel.Emit(ctx, record)
}

func skipMirror(level logging.Level, msg string) bool {
	if level != logging.LevelDebug {
		return false
	}
	_, skip := unmirroredMessages[msg]
	return skip
}

func severityOf(level logging.Level) otellog.Severity {
	switch level {
	case logging.LevelDebug:
		return otellog.SeverityDebug
	case logging.LevelInfo:
		return otellog.SeverityInfo
	case logging.LevelWarn:
		return otellog.SeverityWarn
	case logging.LevelError:
		return otellog.SeverityError
	}
	if level < logging.LevelDebug {
		return otellog.SeverityTrace
	}
	return otellog.SeverityFatal
}

// recordAttributes mirrors the logger's key/value convention. A trailing key
// without a value becomes an empty attribute.
func recordAttributes(args []any) []otellog.KeyValue {
	attrs := make([]otellog.KeyValue, 0, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		key, _ := args[i].(string)
		if strings.TrimSpace(key) == "" {
			key = "arg_" + strconv.Itoa(i/2)
		}
		if i+1 == len(args) {
			attrs = append(attrs, otellog.Empty(key))
			break
		}
		attrs = append(attrs, otellog.KeyValue{Key: key, Value: logValue(args[i+1])})
	}
	return attrs
}

// logValue covers the value types the warehouse logs. Anything else is
// rendered with fmt.
func logValue(v any) otellog.Value {
	switch v := v.(type) {
	case nil:
		return otellog.Value{}
	case string:
		return otellog.StringValue(v)
	case bool:
		return otellog.BoolValue(v)
	case int:
		return otellog.IntValue(v)
	case int32:
		return otellog.Int64Value(int64(v))
	case int64:
		return otellog.Int64Value(v)
	case *int64:
		if v == nil {
			return otellog.Value{}
		}
		return otellog.Int64Value(*v)
	case *int:
		if v == nil {
			return otellog.Value{}
		}
		return otellog.IntValue(*v)
	case *string:
		if v == nil {
			return otellog.Value{}
		}
		return otellog.StringValue(*v)
	case float64:
		return otellog.Float64Value(v)
	case time.Duration:
		return otellog.StringValue(v.String())
	case time.Time:
		return otellog.StringValue(v.UTC().Format(time.RFC3339Nano))
	case error:
		return otellog.StringValue(v.Error())
	case []string:
		items := make([]otellog.Value, len(v))
		for i, s := range v {
			items[i] = otellog.StringValue(s)
		}
		return otellog.SliceValue(items...)
	case []int64:
		items := make([]otellog.Value, len(v))
		for i, n := range v {
			items[i] = otellog.Int64Value(n)
		}
		return otellog.SliceValue(items...)
	case map[string]int:
		return mapValue(v, func(n int) otellog.Value { return otellog.IntValue(n) })
	case map[string]any:
		return mapValue(v, func(x any) otellog.Value { return otellog.StringValue(fmt.Sprint(x)) })
	case fmt.Stringer:
		return otellog.StringValue(v.String())
	default:
		return otellog.StringValue(fmt.Sprint(v))
	}
}

func mapValue[V any](m map[string]V, conv func(V) otellog.Value) otellog.Value {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	kvs := make([]otellog.KeyValue, len(keys))
	for i, k := range keys {
		kvs[i] = otellog.KeyValue{Key: k, Value: conv(m[k])}
	}
	return otellog.MapValue(kvs...)
}
