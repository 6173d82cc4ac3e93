package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/riskibarqy/football-warehouse/internal/app"
	"github.com/riskibarqy/football-warehouse/internal/config"
	"github.com/riskibarqy/football-warehouse/internal/domain/warehouse"
	"github.com/riskibarqy/football-warehouse/internal/observability"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
	"github.com/riskibarqy/football-warehouse/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 2
	}
	cmd := strings.ToLower(strings.TrimSpace(args[0]))
	switch cmd {
	case "build", "audit", "export", "views":
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	telemetry, err := observability.Start(cfg, logger)
	if err != nil {
		logger.Error("start telemetry", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := telemetry.Shutdown(ctx); err != nil {
			logger.Warn("shutdown telemetry", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		return 1
	}
	defer func() { _ = a.Close() }()

	switch cmd {
	case "build":
		err = runBuild(ctx, a, logger)
	case "audit":
		err = runAudit(ctx, a)
	case "export":
		err = runExport(ctx, a, args[1:])
	case "views":
		err = printViews(a, args[1:])
	}
	if err != nil {
		logger.Error(cmd+" failed", "error", err)
		if errors.Is(err, usecase.ErrInvalidInput) {
			return 2
		}
		return 1
	}
	return 0
}

func runBuild(ctx context.Context, a *app.App, logger *logging.Logger) error {
	report, err := a.BuildService().Build(ctx)
	if pushErr := a.PushMetrics(ctx); pushErr != nil {
		logger.Warn("push build metrics", "error", pushErr)
	}
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", report.RunID)
	fmt.Printf("duration: %s\n", report.Duration.Round(time.Millisecond))
	for _, table := range sortedKeys(report.Rows) {
		fmt.Printf("%-24s %d\n", table, report.Rows[table])
	}
	for _, kind := range sortedKeys(report.Skipped) {
		if n := report.Skipped[kind]; n > 0 {
			fmt.Printf("skipped %-16s %d\n", kind, n)
		}
	}
	return nil
}

func runAudit(ctx context.Context, a *app.App) error {
	report, err := a.AuditService().Run(ctx)
	for _, c := range report.Checks {
		status := "ok"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Printf("%-4s %s %s\n", status, c.Name, c.Detail)
	}
	return err
}

func runExport(ctx context.Context, a *app.App, views []string) error {
	svc, err := a.ExportService()
	if err != nil {
		return err
	}
	report, err := svc.Export(ctx, views...)
	for _, v := range report.Views {
		fmt.Printf("%-12s %d rows in %s\n", v.View, v.Rows, v.Duration.Round(time.Millisecond))
	}
	return err
}

func printViews(a *app.App, views []string) error {
	if len(views) == 0 {
		views = warehouse.Views()
	}
	for _, name := range views {
		query, _, err := a.Store().ViewSQL(name)
		if err != nil {
			return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		fmt.Printf("-- %s\n%s;\n\n", name, query)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  warehouse build                 drop and reload every table from DATA_DIR")
	fmt.Fprintln(os.Stderr, "  warehouse audit                 run integrity checks against the warehouse")
	fmt.Fprintln(os.Stderr, "  warehouse export [view...]      write views as parquet files to EXPORT_DIR")
	fmt.Fprintln(os.Stderr, "  warehouse views [view...]       print the SQL behind each view")
}
