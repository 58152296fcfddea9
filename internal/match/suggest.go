package match

import "strings"

// Suggest returns the candidate closest to name. Names are compared case
// insensitively with '-', '_' and '.' ignored. A candidate qualifies when
// it is two edits away at most, or a third of the longer name for long
// names. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	key := fold(name)
	best, bestDist := "", -1

	for _, c := range candidates {
		ck := fold(c)

		d := Distance(key, ck)
		if d > max(2, max(len(key), len(ck))/3) {
			continue
		}

		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist >= 0
}

// Hint formats the suggestion for name as " (did you mean %q?)", or
// returns "" when nothing is close enough.
func Hint(name string, candidates []string) string {
	s, ok := Suggest(name, candidates)
	if !ok {
		return ""
	}

	return ` (did you mean "` + s + `"?)`
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.':
			return -1
		}

		return r
	}, strings.ToLower(s))
}
