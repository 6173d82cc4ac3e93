package app

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/football-warehouse/internal/config"
)

// dataSourceName turns the configured DB_URL into what the driver expects.
// DuckDB takes a file path, where an empty string or :memory: means an
// in-memory database.
func dataSourceName(driver, raw string, disablePreparedBinaryResult bool) string {
	raw = strings.TrimSpace(raw)
	if driver == config.DriverDuckDB {
		if raw == ":memory:" {
			return ""
		}
		return raw
	}
	return normalizeDBURL(raw, disablePreparedBinaryResult)
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbName(driver, raw string) string {
	if driver == config.DriverDuckDB {
		raw = strings.TrimSpace(raw)
		if raw == "" || raw == ":memory:" {
			return "memory"
		}
		return strings.TrimSuffix(filepath.Base(raw), filepath.Ext(raw))
	}
	return dbNameFromURL(raw)
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
