package app

import (
	"strconv"
	"strings"
)

const maxTracedQueryLength = 512

// formatDBQueryForTrace compacts a statement for span attributes. Batched
// inserts keep their first VALUES tuple and a row count, since the rest
// only repeats placeholders.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")

	const values = " VALUES "
	if i := strings.Index(normalized, values); i >= 0 {
		tuples := normalized[i+len(values):]
		if end := strings.Index(tuples, "), ("); end >= 0 {
			rows := strings.Count(tuples, "), (") + 1
			normalized = normalized[:i+len(values)] + tuples[:end+1] + " /* " + strconv.Itoa(rows) + " rows */"
		}
	}

	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
