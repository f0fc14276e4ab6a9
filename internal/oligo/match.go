// internal/oligo/match.go
package oligo

import "bytes"

// Hit is one placement of a pattern on a sequence.
type Hit struct {
	Pos         int
	Mismatches  int
	MismatchIdx []int // 0-based positions in the pattern that mismatched
}

func isConcrete(p []byte) bool {
	for _, c := range p {
		switch c {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// Scan finds every placement of pattern in seq with at most maxMM
// mismatches. Both inputs are expected upper-case (see Normalize).
// capHits == 0 means unlimited.
func Scan(seq, pattern []byte, maxMM, capHits int) []Hit {
	pl := len(pattern)
	if pl == 0 || len(seq) < pl {
		return nil
	}

	// Exact-match fast path for concrete patterns.
	if maxMM == 0 && isConcrete(pattern) {
		var out []Hit
		for i := 0; ; {
			j := bytes.Index(seq[i:], pattern)
			if j < 0 {
				break
			}
			pos := i + j
			out = append(out, Hit{Pos: pos})
			if capHits > 0 && len(out) >= capHits {
				break
			}
			i = pos + 1
		}
		return out
	}

	var out []Hit
	end := len(seq) - pl
window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		var idx []int
		for j := 0; j < pl; j++ {
			if !BaseMatch(seq[pos+j], pattern[j]) {
				mm++
				if mm > maxMM {
					continue window
				}
				idx = append(idx, j)
			}
		}
		out = append(out, Hit{Pos: pos, Mismatches: mm, MismatchIdx: idx})
		if capHits > 0 && len(out) >= capHits {
			break
		}
	}
	return out
}
