package team

// Team is a club or national side seen in match metadata.
type Team struct {
	ID     int64   `db:"id"`
	Name   *string `db:"name"`
	Gender *string `db:"gender"`
}

// Dedupe keeps the first mention of every team id, preserving the order in
// which ids were first seen.
func Dedupe(mentions []Team) []Team {
	seen := make(map[int64]struct{}, len(mentions))
	out := make([]Team, 0, len(mentions))
	for _, t := range mentions {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
