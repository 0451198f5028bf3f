package decision

import "sort"

// Sequence orders allowed records for execution triage: positions with the
// lowest vitals score first so the biggest problems surface first, ties
// broken by larger capital allocated. Candidate records carry no vitals and
// sort after positions, best score first. Pure ordering; no new decisions
// are created here.
func Sequence(allowed []Record) []Record {
	out := make([]Record, len(allowed))
	copy(out, allowed)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Type != b.Type {
			return a.Type == RecordPosition
		}
		if a.Type == RecordCandidate {
			return a.Score > b.Score
		}
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.Capital > b.Capital
	})
	return out
}
