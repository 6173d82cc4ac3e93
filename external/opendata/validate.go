package opendata

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-warehouse/internal/platform/logging"
)

// ValidFiles checks every path concurrently and returns the ones holding a
// JSON array that decodes into []T, in input order. Unreadable or malformed
// files are logged and left out; they never fail the call. Only pool setup and
// context cancellation return an error.
func ValidFiles[T any](ctx context.Context, paths []string, workers int, logger *logging.Logger) ([]string, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if len(paths) == 0 {
		return nil, nil
	}
	workers = min(max(workers, 1), len(paths))

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create validation pool: %w", err)
	}
	defer pool.Release()

	verdicts := make([]error, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			verdicts[i] = checkJSONArray[T](path)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit validation task: %w", err)
		}
	}
	wg.Wait()

	out := make([]string, 0, len(paths))
	for i, path := range paths {
		if verdicts[i] != nil {
			logger.WarnContext(ctx, "skipping unreadable source file", "path", path, "error", verdicts[i])
			continue
		}
		out = append(out, path)
	}
	return out, nil
}

func checkJSONArray[T any](path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return crerr.Wrapf(ErrMalformedFile, "%s is not a JSON array", path)
	}
	var rows []T
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		return crerr.Wrapf(ErrMalformedFile, "decode %s: %v", path, err)
	}
	return nil
}
