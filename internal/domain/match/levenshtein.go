// Package match implements the similarity scorer and the best-candidate
// selection that powers fuzzy resolution: Levenshtein edit distance,
// synonym-expanded token overlap, and the lenient acceptance gate.
package match

// Levenshtein computes the edit distance between two strings with unit
// cost for substitution, insertion, and deletion (no transpositions).
// Symmetric; the triangle inequality holds. Two-row DP, O(len(a)*len(b)).
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
