package scroll

import "unicode"

// NoMatch is returned by JumpToLetter when no entry starts with the
// requested letter. Callers treat any negative result as "use index 0".
const NoMatch = -1

// JumpToLetter binary-searches a sorted list for the first entry whose
// leading character equals letter (compared upper-cased). key returns the
// sort string for an index. Returns NoMatch for an empty list or when no
// entry matches.
func JumpToLetter(size int, letter rune, key func(int) string) int {
	if size <= 0 || key == nil {
		return NoMatch
	}
	letter = unicode.ToUpper(letter)
	low, high := -1, size
	for high-low > 1 {
		mid := (low + high) / 2
		if leadingChar(key(mid)) < letter {
			low = mid
		} else {
			high = mid
		}
	}
	if high >= size || leadingChar(key(high)) != letter {
		return NoMatch
	}
	for high > 0 && leadingChar(key(high-1)) == letter {
		high--
	}
	return high
}

// SeedEstimateForLetter re-seeds the estimate window to the span of entries
// sharing the jump target's leading letter, so subsequent acceleration is
// scoped to the local alphabetic range instead of the whole list.
func SeedEstimateForLetter(st *State, size, index int, key func(int) string) {
	if st == nil || index < 0 || index >= size || key == nil {
		return
	}
	letter := leadingChar(key(index))
	start := index
	for start > 0 && leadingChar(key(start-1)) == letter {
		start--
	}
	end := index
	for end < size-1 && leadingChar(key(end+1)) == letter {
		end++
	}
	st.EstimateStart = start
	st.EstimateEnd = end
}

func leadingChar(s string) rune {
	for _, r := range s {
		return unicode.ToUpper(r)
	}
	return 0
}
