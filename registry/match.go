package registry

// DefaultThreshold is the similarity ratio a window must reach for
// ApproxMatch to accept it.
const DefaultThreshold = 0.8

// ApproxMatch reports whether some window of text of pattern's length
// matches pattern position-wise in at least threshold of its characters.
//
// This is a fixed-window Hamming-similarity scan: it tolerates character
// substitutions but not insertions or deletions, and it is case
// sensitive — callers lower-case both operands beforehand. Text shorter
// than pattern never matches. An empty pattern trivially matches; the
// "empty query shows everything" behavior lives at the call sites, which
// treat an empty query as a separate show-all branch.
func ApproxMatch(text, pattern string, threshold float64) bool {
	patternLen := len(pattern)
	required := float64(patternLen) * threshold

	for i := 0; i <= len(text)-patternLen; i++ {
		window := text[i : i+patternLen]
		matched := 0

		for j := 0; j < patternLen; j++ {
			if window[j] == pattern[j] {
				matched++
			}
		}

		if float64(matched) >= required {
			return true
		}
	}

	return false
}

// fuzzy is ApproxMatch at the default threshold. Operands are
// lower-cased by the search call sites.
func fuzzy(text, pattern string) bool {
	return ApproxMatch(text, pattern, DefaultThreshold)
}
