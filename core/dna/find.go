// core/dna/find.go
package dna

import (
	"sort"
	"strings"
)

// Find returns the ascending start offsets of every exact occurrence of pat in
// s on the forward strand and, when bothStrands is set, of the reverse
// complement of pat as well. Offsets are forward-strand coordinates and are
// unique: a palindromic pat matches both strands at the same offset but is
// reported once. An empty pat yields nil.
func Find(s, pat Sequence, bothStrands bool) []int {
	if len(pat) == 0 || len(s) < len(pat) {
		return nil
	}
	out := findExact(s, pat)
	if bothStrands {
		if rc := pat.RevComp(); rc != pat {
			out = mergeUnique(out, findExact(s, rc))
		}
	}
	return out
}

// findExact jump-scans with strings.Index, overlapping matches included.
func findExact(s, pat Sequence) []int {
	var out []int
	for i := 0; ; {
		j := strings.Index(string(s[i:]), string(pat))
		if j < 0 {
			break
		}
		pos := i + j
		out = append(out, pos)
		i = pos + 1
	}
	return out
}

func mergeUnique(a, b []int) []int {
	if len(b) == 0 {
		return a
	}
	out := append(a, b...)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

// ApproxHit is one tolerant occurrence of a motif.
type ApproxHit struct {
	Pos        int
	Mismatches int
}

// FindApprox slides pat over s and reports every window with at most maxMM
// mismatching bases, leftmost first. maxMM == 0 degenerates to exact search.
func FindApprox(s, pat Sequence, maxMM int) []ApproxHit {
	pl := len(pat)
	if pl == 0 || len(s) < pl {
		return nil
	}
	if maxMM <= 0 {
		var out []ApproxHit
		for _, pos := range findExact(s, pat) {
			out = append(out, ApproxHit{Pos: pos})
		}
		return out
	}
	end := len(s) - pl
	var out []ApproxHit
window:
	for pos := 0; pos <= end; pos++ {
		mm := 0
		for j := 0; j < pl; j++ {
			if s[pos+j] != pat[j] {
				mm++
				if mm > maxMM {
					continue window
				}
			}
		}
		out = append(out, ApproxHit{Pos: pos, Mismatches: mm})
	}
	return out
}
