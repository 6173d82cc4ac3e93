package observability

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/football-warehouse/internal/config"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// Telemetry owns the process-wide tracing and profiling exporters of one
// command run.
type Telemetry struct {
	logger   *logging.Logger
	tracing  bool
	profiler *pyroscope.Profiler
}

// Start enables whatever cfg turns on. Disabled or unconfigured backends are
// skipped, not reported as errors.
func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}
	t.startTracing(cfg)
	if err := t.startProfiling(cfg); err != nil {
		_ = t.Shutdown(context.Background())
		return nil, err
	}
	return t, nil
}

// TracingEnabled reports whether spans are exported to Uptrace.
func (t *Telemetry) TracingEnabled() bool { return t != nil && t.tracing }

// ProfilingEnabled reports whether a pyroscope profiler is running.
func (t *Telemetry) ProfilingEnabled() bool { return t != nil && t.profiler != nil }

func (t *Telemetry) startTracing(cfg config.Config) {
	logging.SetMirror(nil)
	switch {
	case !cfg.UptraceEnabled:
		t.logger.Debug("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		t.logger.Warn("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)
	t.tracing = true
	if cfg.UptraceLogsEnabled {
		logging.SetMirror(newLogMirror(cfg.ServiceVersion).emit)
	}
	t.logger.Info("uptrace enabled", "service", cfg.ServiceName, "environment", cfg.AppEnv, "logs", cfg.UptraceLogsEnabled)
}

// Builds are dominated by JSON decoding and batched inserts, so only CPU,
// allocation and goroutine profiles are collected.
func (t *Telemetry) startProfiling(cfg config.Config) error {
	if !cfg.PyroscopeEnabled {
		t.logger.Debug("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":    cfg.AppEnv,
			"driver": cfg.DBDriver,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileGoroutines,
		},
	})
	if err != nil {
		return crerr.Wrap(err, "start pyroscope")
	}
	t.profiler = profiler
	t.logger.Info("pyroscope enabled", "server", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	return nil
}

// Shutdown flushes spans and stops the profiler. It is safe to call more than
// once and on a nil Telemetry.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var err error
	if t.tracing {
		logging.SetMirror(nil)
		t.tracing = false
		if shutdownErr := uptrace.Shutdown(ctx); shutdownErr != nil {
			err = crerr.CombineErrors(err, crerr.Wrap(shutdownErr, "shutdown uptrace"))
		}
	}
	if t.profiler != nil {
		profiler := t.profiler
		t.profiler = nil
		if stopErr := profiler.Stop(); stopErr != nil {
			err = crerr.CombineErrors(err, crerr.Wrap(stopErr, "stop pyroscope"))
		}
	}
	return err
}
